// Package billing holds the order aggregate computations: totals,
// outstanding balance and the payment status transition.  Everything
// here is pure arithmetic over already-loaded rows so it can be driven
// both by handlers (inside a transaction) and by tests.
package billing

import (
	"fmt"
	"strings"

	"github.com/platefront/restaurant-api/internal/model"
)

// StatusMode selects how the paid/partial decision is made when a
// payment is applied.
type StatusMode int

const (
	// ModeCumulative compares the sum of all payments (including the
	// one being applied) against the order total.
	ModeCumulative StatusMode = iota
	// ModeLatest compares only the newest payment's amount against the
	// total at that moment.  A small final payment after a large
	// earlier one downgrades "paid" back to "partial" in this mode;
	// kept for compatibility with deployments that relied on it.
	ModeLatest
)

// ParseStatusMode maps a configuration string to a StatusMode.
// Accepted values are "cumulative" and "latest" (case-insensitive).
func ParseStatusMode(s string) (StatusMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cumulative":
		return ModeCumulative, nil
	case "latest":
		return ModeLatest, nil
	}
	return ModeCumulative, fmt.Errorf("unknown payment status mode %q", s)
}

// OrderTotal returns the order total in cents: the sum of unit price
// times quantity over all line items.  It is recomputed on every read
// and never cached, so it always reflects the current line items.
func OrderTotal(items []model.OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.PriceCents * int64(it.Quantity)
	}
	return total
}

// PaymentsTotal returns the sum of all payment amounts in cents.
func PaymentsTotal(payments []model.Payment) int64 {
	var sum int64
	for _, p := range payments {
		sum += p.AmountCents
	}
	return sum
}

// Balance returns the outstanding balance: total minus payments
// received, floored at zero.  Overpayment is absorbed silently rather
// than surfacing as a negative balance or refund condition.
func Balance(totalCents int64, payments []model.Payment) int64 {
	b := totalCents - PaymentsTotal(payments)
	if b < 0 {
		return 0
	}
	return b
}

// StatusAfterPayment decides the order status that results from
// applying a payment of amountCents to an order whose current total is
// totalCents and whose previously recorded payments are prior.  The
// new payment is not expected to be in prior yet.
func StatusAfterPayment(mode StatusMode, totalCents int64, prior []model.Payment, amountCents int64) string {
	paid := amountCents
	if mode == ModeCumulative {
		paid += PaymentsTotal(prior)
	}
	if paid >= totalCents {
		return model.OrderStatusPaid
	}
	return model.OrderStatusPartial
}
