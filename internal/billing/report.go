package billing

import (
	"sort"

	"github.com/platefront/restaurant-api/internal/model"
)

// DailySales summarizes all payments recorded on one UTC calendar day.
type DailySales struct {
	Date         string `json:"date"`          // YYYY-MM-DD
	Payments     int    `json:"payments"`      // number of payments that day
	RevenueCents int64  `json:"revenue_cents"` // summed amounts that day
}

// SalesByDay groups payments by the UTC date component of their
// creation time and returns one summary per day, most recent day
// first.  Time of day is collapsed; all timestamps are treated as UTC.
func SalesByDay(payments []model.Payment) []DailySales {
	byDay := make(map[string]*DailySales)
	for _, p := range payments {
		day := p.CreatedAt.UTC().Format("2006-01-02")
		s, ok := byDay[day]
		if !ok {
			s = &DailySales{Date: day}
			byDay[day] = s
		}
		s.Payments++
		s.RevenueCents += p.AmountCents
	}
	out := make([]DailySales, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	// ISO dates sort lexically, so a string compare orders by day.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
