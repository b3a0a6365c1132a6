package handler

// HTTP handlers for the dining floor plan.  Labels are unique; a label
// collision surfaces as 409 instead of a raw database error.

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platefront/restaurant-api/internal/event"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/repository"
)

// TableHandler groups the repositories needed for floor plan operations.
type TableHandler struct {
	Tables *repository.TableRepo
}

// NewTableHandler constructs a TableHandler.
func NewTableHandler(tables *repository.TableRepo) *TableHandler {
	if tables == nil {
		panic("nil repository passed to NewTableHandler")
	}
	return &TableHandler{Tables: tables}
}

type tableCreateReq struct {
	Label    string `json:"label"`
	Capacity *int   `json:"capacity"`
}

type tableUpdateReq struct {
	Label    *string `json:"label"`
	Capacity *int    `json:"capacity"`
	Occupied *bool   `json:"occupied"`
}

// List handles GET /api/tables.
func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
	}
	return c.JSON(http.StatusOK, tables)
}

// Create handles POST /api/tables.  Label is required, capacity must be
// at least 1 and defaults to 2 when omitted.
func (h *TableHandler) Create(c echo.Context) error {
	var req tableCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Label == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "label is required"})
	}
	capacity := 2
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	if capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}
	t := model.Table{Label: req.Label, Capacity: uint32(capacity)}

	if err := h.Tables.Create(c.Request().Context(), &t); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "table label already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create table"})
	}
	broadcast(event.Event{Type: event.TypeTableCreated, Data: t})
	return c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/tables/:id.  Toggling occupied is the common
// case for the host stand, so all fields are optional.
func (h *TableHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	var req tableUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Label != nil && *req.Label == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "label must not be empty"})
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be at least 1"})
	}

	ctx := c.Request().Context()
	t, err := h.Tables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load table"})
	}
	if req.Label != nil {
		t.Label = *req.Label
	}
	if req.Capacity != nil {
		t.Capacity = uint32(*req.Capacity)
	}
	if req.Occupied != nil {
		t.Occupied = *req.Occupied
	}

	if err := h.Tables.Update(ctx, t); err != nil {
		switch {
		case errors.Is(err, repository.ErrTableNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "table label already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update table"})
	}
	broadcast(event.Event{Type: event.TypeTableUpdated, Data: *t})
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/tables/:id.  Reservations and orders keep
// their rows with table_id set to null.
func (h *TableHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
	}
	if err := h.Tables.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete table"})
	}
	broadcast(event.Event{Type: event.TypeTableDeleted, ID: id})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
