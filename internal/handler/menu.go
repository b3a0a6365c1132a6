package handler

// HTTP handlers for the menu catalog.  Listing is public so guests can
// browse; every mutation requires the ADMIN role (enforced by
// middleware).  Malformed numeric input is rejected with 400 rather
// than silently defaulted; defaults apply only to genuinely optional
// fields (category, available).

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platefront/restaurant-api/internal/event"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/repository"
)

// MenuHandler groups the repositories needed for catalog operations.
type MenuHandler struct {
	Menu *repository.MenuRepo
}

// NewMenuHandler constructs a MenuHandler.  The repository must be non-nil.
func NewMenuHandler(menu *repository.MenuRepo) *MenuHandler {
	if menu == nil {
		panic("nil repository passed to NewMenuHandler")
	}
	return &MenuHandler{Menu: menu}
}

type menuCreateReq struct {
	Name       string `json:"name"`
	PriceCents *int64 `json:"price_cents"`
	Category   string `json:"category"`
	Available  *bool  `json:"available"`
}

type menuUpdateReq struct {
	Name       *string `json:"name"`
	PriceCents *int64  `json:"price_cents"`
	Category   *string `json:"category"`
	Available  *bool   `json:"available"`
}

// List handles GET /api/menu.  Returns all catalog items, newest first.
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.Menu.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/menu.  Name and a non-negative price are
// required; category defaults to "General" and available to true.
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.PriceCents == nil || *req.PriceCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be a non-negative integer"})
	}
	m := model.MenuItem{
		Name:       req.Name,
		PriceCents: *req.PriceCents,
		Category:   "General",
		Available:  true,
	}
	if req.Category != "" {
		m.Category = req.Category
	}
	if req.Available != nil {
		m.Available = *req.Available
	}

	if err := h.Menu.Create(c.Request().Context(), &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create menu item"})
	}
	broadcast(event.Event{Type: event.TypeMenuCreated, Data: m})
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/menu/:id.  Fields absent from the body keep
// their current value.
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
	}
	var req menuUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be a non-negative integer"})
	}
	if req.Name != nil && *req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name must not be empty"})
	}

	ctx := c.Request().Context()
	m, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu item"})
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.PriceCents != nil {
		m.PriceCents = *req.PriceCents
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Available != nil {
		m.Available = *req.Available
	}

	if err := h.Menu.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update menu item"})
	}
	broadcast(event.Event{Type: event.TypeMenuUpdated, Data: *m})
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/menu/:id.  Order line items that snapshot
// this item keep their name and price; only the catalog row goes away.
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
	}
	if err := h.Menu.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete menu item"})
	}
	broadcast(event.Event{Type: event.TypeMenuDeleted, ID: id})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
