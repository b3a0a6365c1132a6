package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/platefront/restaurant-api/internal/model"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.UTC)
}

func TestSalesByDay(t *testing.T) {
	tests := []struct {
		name     string
		payments []model.Payment
		want     []DailySales
	}{
		{
			name:     "no payments",
			payments: nil,
			want:     []DailySales{},
		},
		{
			name: "two days grouped and ordered newest first",
			payments: []model.Payment{
				{AmountCents: 2500, CreatedAt: day(2025, time.October, 1, 12)},
				{AmountCents: 1000, CreatedAt: day(2025, time.October, 2, 9)},
				{AmountCents: 500, CreatedAt: day(2025, time.October, 1, 19)},
			},
			want: []DailySales{
				{Date: "2025-10-02", Payments: 1, RevenueCents: 1000},
				{Date: "2025-10-01", Payments: 2, RevenueCents: 3000},
			},
		},
		{
			name: "time of day is collapsed",
			payments: []model.Payment{
				{AmountCents: 100, CreatedAt: day(2025, time.October, 3, 0)},
				{AmountCents: 200, CreatedAt: day(2025, time.October, 3, 23)},
			},
			want: []DailySales{
				{Date: "2025-10-03", Payments: 2, RevenueCents: 300},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SalesByDay(tc.payments))
		})
	}
}

func TestSalesByDayMonthBoundary(t *testing.T) {
	got := SalesByDay([]model.Payment{
		{AmountCents: 100, CreatedAt: day(2025, time.September, 30, 23)},
		{AmountCents: 200, CreatedAt: day(2025, time.October, 1, 0)},
	})
	assert.Len(t, got, 2)
	assert.Equal(t, "2025-10-01", got[0].Date)
	assert.Equal(t, "2025-09-30", got[1].Date)
}
