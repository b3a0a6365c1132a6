package handler

// Read-only payment views: the raw ledger and the daily sales rollup.
// Both sit behind JWT auth, so they skip the response cache and pay the
// two queries on every request; at restaurant volumes that is nothing.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/platefront/restaurant-api/internal/billing"
	"github.com/platefront/restaurant-api/internal/repository"
)

// PaymentHandler serves the payment ledger and the sales report.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(payments *repository.PaymentRepo) *PaymentHandler {
	if payments == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: payments}
}

// List handles GET /api/payments.  Newest payment first.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.Payments.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
	}
	return c.JSON(http.StatusOK, payments)
}

// SalesReport handles GET /api/reports/sales.  Payments are grouped by
// UTC calendar day, most recent day first.
func (h *PaymentHandler) SalesReport(c echo.Context) error {
	payments, err := h.Payments.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load payments"})
	}
	return c.JSON(http.StatusOK, billing.SalesByDay(payments))
}
