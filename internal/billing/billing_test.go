package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platefront/restaurant-api/internal/model"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []model.OrderItem
		want  int64
	}{
		{
			name:  "no line items",
			items: nil,
			want:  0,
		},
		{
			name: "single item",
			items: []model.OrderItem{
				{Name: "Margherita Pizza", PriceCents: 1199, Quantity: 1},
			},
			want: 1199,
		},
		{
			name: "quantities multiply",
			items: []model.OrderItem{
				{Name: "Burger", PriceCents: 1000, Quantity: 2},
				{Name: "Fries", PriceCents: 500, Quantity: 1},
			},
			want: 2500,
		},
		{
			name: "zero priced custom item",
			items: []model.OrderItem{
				{Name: "Custom", PriceCents: 0, Quantity: 3},
				{Name: "Soda", PriceCents: 250, Quantity: 2},
			},
			want: 500,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OrderTotal(tc.items))
		})
	}
}

func TestOrderTotalTracksItemMutation(t *testing.T) {
	items := []model.OrderItem{
		{Name: "Caesar Salad", PriceCents: 950, Quantity: 1},
		{Name: "Spaghetti Bolognese", PriceCents: 1225, Quantity: 2},
	}
	assert.Equal(t, int64(950+2450), OrderTotal(items))

	// Quantity bump is reflected on the next read.
	items[0].Quantity = 3
	assert.Equal(t, int64(2850+2450), OrderTotal(items))

	// Removing a line item is reflected too, even when it leaves a
	// zero-total order.
	assert.Equal(t, int64(0), OrderTotal(items[:0]))
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		payments []model.Payment
		want     int64
	}{
		{
			name:  "no payments",
			total: 2500,
			want:  2500,
		},
		{
			name:  "empty order",
			total: 0,
			want:  0,
		},
		{
			name:     "partial payment",
			total:    2500,
			payments: []model.Payment{{AmountCents: 1000}},
			want:     1500,
		},
		{
			name:     "exact payment",
			total:    2500,
			payments: []model.Payment{{AmountCents: 2500}},
			want:     0,
		},
		{
			name:     "overpayment clamps at zero",
			total:    2500,
			payments: []model.Payment{{AmountCents: 2000}, {AmountCents: 2000}},
			want:     0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Balance(tc.total, tc.payments)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestStatusAfterPayment(t *testing.T) {
	tests := []struct {
		name   string
		mode   StatusMode
		total  int64
		prior  []model.Payment
		amount int64
		want   string
	}{
		{
			name:   "full payment pays the order",
			mode:   ModeCumulative,
			total:  2500,
			amount: 2500,
			want:   model.OrderStatusPaid,
		},
		{
			name:   "short payment is partial",
			mode:   ModeCumulative,
			total:  2500,
			amount: 1000,
			want:   model.OrderStatusPartial,
		},
		{
			name:   "cumulative: second payment completes the total",
			mode:   ModeCumulative,
			total:  2500,
			prior:  []model.Payment{{AmountCents: 2000}},
			amount: 500,
			want:   model.OrderStatusPaid,
		},
		{
			name:   "cumulative: small follow-up keeps paid after overpayment",
			mode:   ModeCumulative,
			total:  2500,
			prior:  []model.Payment{{AmountCents: 3000}},
			amount: 100,
			want:   model.OrderStatusPaid,
		},
		{
			name:   "latest: small follow-up downgrades to partial",
			mode:   ModeLatest,
			total:  2500,
			prior:  []model.Payment{{AmountCents: 3000}},
			amount: 100,
			want:   model.OrderStatusPartial,
		},
		{
			name:   "latest: payment covering total pays regardless of history",
			mode:   ModeLatest,
			total:  2500,
			prior:  []model.Payment{{AmountCents: 100}},
			amount: 2500,
			want:   model.OrderStatusPaid,
		},
		{
			name:   "zero total is paid by any payment",
			mode:   ModeCumulative,
			total:  0,
			amount: 0,
			want:   model.OrderStatusPaid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusAfterPayment(tc.mode, tc.total, tc.prior, tc.amount))
		})
	}
}

func TestParseStatusMode(t *testing.T) {
	tests := []struct {
		in      string
		want    StatusMode
		wantErr bool
	}{
		{in: "", want: ModeCumulative},
		{in: "cumulative", want: ModeCumulative},
		{in: "Latest", want: ModeLatest},
		{in: " latest ", want: ModeLatest},
		{in: "newest", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStatusMode(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Snapshot semantics: a line item added from the catalog keeps the
// price it was added at, so catalog edits never change billed totals.
func TestLineItemPriceSnapshot(t *testing.T) {
	catalog := model.MenuItem{ID: 7, Name: "Margherita Pizza", PriceCents: 1199}

	id := catalog.ID
	item := model.OrderItem{
		MenuItemID: &id,
		Name:       catalog.Name,
		PriceCents: catalog.PriceCents,
		Quantity:   1,
	}

	catalog.PriceCents = 1599 // price hike after the item was ordered

	assert.Equal(t, int64(1199), OrderTotal([]model.OrderItem{item}))
}
