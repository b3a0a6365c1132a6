package handler

// HTTP handlers for the reservation book.  Times arrive as RFC 3339
// strings and are stored in UTC.  A reservation may optionally be
// pinned to a table; the table must exist at assignment time, and a
// missing table id is reported as 404 just like any other missing
// referenced resource.

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platefront/restaurant-api/internal/event"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/repository"
)

// ReservationHandler groups the repositories needed for booking operations.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Tables       *repository.TableRepo
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(res *repository.ReservationRepo, tables *repository.TableRepo) *ReservationHandler {
	if res == nil || tables == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: res, Tables: tables}
}

type reservationCreateReq struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Size    *int    `json:"size"`
	Time    string  `json:"time"`
	TableID *uint64 `json:"table_id"`
}

type reservationUpdateReq struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Size    *int    `json:"size"`
	Time    *string `json:"time"`
	TableID *uint64 `json:"table_id"`
	// ClearTable detaches the reservation from its table. Needed because
	// a null table_id in the body is indistinguishable from an absent one.
	ClearTable bool `json:"clear_table"`
}

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	list, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Size == nil || *req.Size < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size must be at least 1"})
	}
	when, err := parseTime(req.Time)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time must be an RFC 3339 timestamp"})
	}

	ctx := c.Request().Context()
	if req.TableID != nil {
		if _, err := h.Tables.GetByID(ctx, *req.TableID); err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load table"})
		}
	}

	res := model.Reservation{
		Name:    req.Name,
		Phone:   req.Phone,
		Size:    uint32(*req.Size),
		Time:    when,
		TableID: req.TableID,
	}
	if err := h.Reservations.Create(ctx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	broadcast(event.Event{Type: event.TypeReservationCreated, Data: res})
	return c.JSON(http.StatusCreated, res)
}

// Update handles PUT /api/reservations/:id.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req reservationUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name != nil && *req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must not be empty"})
	}
	if req.Size != nil && *req.Size < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size must be at least 1"})
	}

	ctx := c.Request().Context()
	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservation"})
	}

	if req.Name != nil {
		res.Name = *req.Name
	}
	if req.Phone != nil {
		res.Phone = *req.Phone
	}
	if req.Size != nil {
		res.Size = uint32(*req.Size)
	}
	if req.Time != nil {
		when, terr := parseTime(*req.Time)
		if terr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "time must be an RFC 3339 timestamp"})
		}
		res.Time = when
	}
	if req.ClearTable {
		res.TableID = nil
	} else if req.TableID != nil {
		if _, terr := h.Tables.GetByID(ctx, *req.TableID); terr != nil {
			if errors.Is(terr, repository.ErrTableNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load table"})
		}
		res.TableID = req.TableID
	}

	if err := h.Reservations.Update(ctx, res); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update reservation"})
	}
	broadcast(event.Event{Type: event.TypeReservationUpdated, Data: *res})
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /api/reservations/:id.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Reservations.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete reservation"})
	}
	broadcast(event.Event{Type: event.TypeReservationDeleted, ID: id})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
