package handler

// HTTP handlers for orders, their line items and their payments.  The
// multi-row operations (create with items, record a payment) run inside
// a transaction so a failed step leaves nothing behind: an order is
// never persisted with half its items, and a payment is never recorded
// without the matching status change.

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platefront/restaurant-api/internal/billing"
	"github.com/platefront/restaurant-api/internal/event"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/repository"
)

// OrderHandler groups the repositories and billing mode needed for
// order operations.
type OrderHandler struct {
	Orders *repository.OrderRepo
	Menu   *repository.MenuRepo
	Tables *repository.TableRepo
	Mode   billing.StatusMode
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *repository.OrderRepo, menu *repository.MenuRepo, tables *repository.TableRepo, mode billing.StatusMode) *OrderHandler {
	if orders == nil || menu == nil || tables == nil {
		panic("nil repository passed to NewOrderHandler")
	}
	return &OrderHandler{Orders: orders, Menu: menu, Tables: tables, Mode: mode}
}

// orderItemReq is one requested line.  Either MenuItemID (catalog item,
// name and price snapshotted server-side) or Name+PriceCents (custom
// item) must be supplied.
type orderItemReq struct {
	MenuItemID *uint64 `json:"menu_item_id"`
	Name       string  `json:"name"`
	PriceCents *int64  `json:"price_cents"`
	Quantity   *uint32 `json:"quantity"`
}

type orderCreateReq struct {
	TableID *uint64        `json:"table_id"`
	Items   []orderItemReq `json:"items"`
}

type orderItemUpdateReq struct {
	PriceCents *int64  `json:"price_cents"`
	Quantity   *uint32 `json:"quantity"`
}

type paymentReq struct {
	AmountCents *int64 `json:"amount_cents"`
	Method      string `json:"method"`
}

// orderResponse is an order enriched with the derived money figures so
// clients never re-implement the arithmetic.
type orderResponse struct {
	model.Order
	TotalCents   int64 `json:"total_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

func newOrderResponse(o model.Order) orderResponse {
	total := billing.OrderTotal(o.Items)
	return orderResponse{
		Order:        o,
		TotalCents:   total,
		BalanceCents: billing.Balance(total, o.Payments),
	}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Orders.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load orders"})
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	o, err := h.Orders.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order"})
	}
	return c.JSON(http.StatusOK, newOrderResponse(*o))
}

// validateItemReq checks one requested line item before any row is
// touched, so validation failures never open a transaction.
func validateItemReq(it orderItemReq) *echo.Map {
	if it.MenuItemID == nil {
		if it.Name == "" {
			return &echo.Map{"error": "each item needs a menu_item_id or a name"}
		}
		if it.PriceCents == nil || *it.PriceCents < 0 {
			return &echo.Map{"error": "custom items need a non-negative price_cents"}
		}
	}
	if it.Quantity != nil && *it.Quantity < 1 {
		return &echo.Map{"error": "quantity must be at least 1"}
	}
	return nil
}

// Create handles POST /api/orders.  The order and all requested line
// items are written in a single transaction; a missing menu item rolls
// everything back and the response is 404.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	for _, it := range req.Items {
		if msg := validateItemReq(it); msg != nil {
			return c.JSON(http.StatusBadRequest, msg)
		}
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

	// Open a transaction so the order and its items land together.
	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	orderID, err := h.Orders.CreateTx(ctx, tx, req.TableID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order"})
	}
	for _, reqItem := range req.Items {
		it := model.OrderItem{OrderID: orderID, Quantity: 1}
		if reqItem.Quantity != nil {
			it.Quantity = *reqItem.Quantity
		}
		if reqItem.MenuItemID != nil {
			m, merr := h.Menu.GetByIDTx(ctx, tx, *reqItem.MenuItemID)
			if merr != nil {
				if errors.Is(merr, repository.ErrMenuItemNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu item"})
			}
			it.MenuItemID = reqItem.MenuItemID
			it.Name = m.Name
			it.PriceCents = m.PriceCents
		} else {
			it.Name = reqItem.Name
			it.PriceCents = *reqItem.PriceCents
		}
		if err := h.Orders.InsertItemTx(ctx, tx, &it); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add order item"})
		}
	}

	o, err := h.Orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit order"})
	}
	committed = true

	resp := newOrderResponse(*o)
	broadcast(event.Event{Type: event.TypeOrderCreated, Data: resp})
	return c.JSON(http.StatusCreated, resp)
}

// Delete handles DELETE /api/orders/:id.  Line items and payments go
// with the order via the schema's cascade.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	if err := h.Orders.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete order"})
	}
	broadcast(event.Event{Type: event.TypeOrderDeleted, ID: id})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// AddItem handles POST /api/orders/:id/items.
func (h *OrderHandler) AddItem(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	var req orderItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validateItemReq(req); msg != nil {
		return c.JSON(http.StatusBadRequest, msg)
	}

	ctx := c.Request().Context()
	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if _, err := h.Orders.GetByIDTx(ctx, tx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order"})
	}

	it := model.OrderItem{OrderID: orderID, Quantity: 1}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if req.MenuItemID != nil {
		m, merr := h.Menu.GetByIDTx(ctx, tx, *req.MenuItemID)
		if merr != nil {
			if errors.Is(merr, repository.ErrMenuItemNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load menu item"})
		}
		it.MenuItemID = req.MenuItemID
		it.Name = m.Name
		it.PriceCents = m.PriceCents
	} else {
		it.Name = req.Name
		it.PriceCents = *req.PriceCents
	}

	if err := h.Orders.InsertItemTx(ctx, tx, &it); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add order item"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit order item"})
	}
	committed = true

	broadcast(event.Event{Type: event.TypeOrderItemAdded, Data: it, ID: orderID})
	return c.JSON(http.StatusCreated, it)
}

// UpdateItem handles PUT /api/orders/:id/items/:item_id.  Only the
// snapshot price and the quantity are mutable; name and catalog link
// are frozen at add time.
func (h *OrderHandler) UpdateItem(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	itemID, err := parseID(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order item id"})
	}
	var req orderItemUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents must be a non-negative integer"})
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
	}

	ctx := c.Request().Context()
	it, err := h.Orders.GetItemByID(ctx, orderID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order item"})
	}
	if req.PriceCents != nil {
		it.PriceCents = *req.PriceCents
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}

	if err := h.Orders.UpdateItem(ctx, it); err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order item"})
	}
	broadcast(event.Event{Type: event.TypeOrderItemUpdated, Data: *it, ID: orderID})
	return c.JSON(http.StatusOK, it)
}

// DeleteItem handles DELETE /api/orders/:id/items/:item_id.  Removing
// the last item leaves a zero-total order; its status is untouched.
func (h *OrderHandler) DeleteItem(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	itemID, err := parseID(c, "item_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order item id"})
	}
	if err := h.Orders.DeleteItem(c.Request().Context(), orderID, itemID); err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete order item"})
	}
	broadcast(event.Event{Type: event.TypeOrderItemDeleted, ID: itemID})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Pay handles POST /api/orders/:id/pay.  The amount defaults to the
// remaining balance; method defaults to "cash".  Payment insert and
// status update share one transaction so the derived status can never
// drift from the recorded payments.
func (h *OrderHandler) Pay(c echo.Context) error {
	orderID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.AmountCents != nil && *req.AmountCents < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_cents must be a non-negative integer"})
	}
	method := req.Method
	if method == "" {
		method = "cash"
	}

	ctx := c.Request().Context()
	tx, err := h.Orders.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	o, err := h.Orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order"})
	}

	total := billing.OrderTotal(o.Items)
	amount := billing.Balance(total, o.Payments)
	if req.AmountCents != nil {
		amount = *req.AmountCents
	}

	p := model.Payment{OrderID: orderID, AmountCents: amount, Method: method}
	if err := h.Orders.InsertPaymentTx(ctx, tx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record payment"})
	}

	status := billing.StatusAfterPayment(h.Mode, total, o.Payments, amount)
	if err := h.Orders.UpdateStatusTx(ctx, tx, orderID, status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order status"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit payment"})
	}
	committed = true

	o.Status = status
	o.Payments = append(o.Payments, p)
	resp := newOrderResponse(*o)
	broadcast(event.Event{Type: event.TypePaymentCreated, Data: p, ID: orderID})
	return c.JSON(http.StatusCreated, echo.Map{"order": resp, "payment": p})
}
