package booking

import (
	"github.com/shopspring/decimal"

	"table-booking/internal/model"
)

// recentLimit caps the dashboard's booking list.
const recentLimit = 10

// Summary aggregates the ledger for the admin dashboard.  Revenue only
// counts confirmed bookings; the counts cover all statuses.
type Summary struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalBookings   int             `json:"total_bookings"`
	Confirmed       int             `json:"confirmed"`
	Cancelled       int             `json:"cancelled"`
	RestaurantCount int             `json:"restaurant_count"`
	Recent          []model.Booking `json:"recent"`
}

// Summarize computes the dashboard aggregates.  Recent is the first
// ten entries of the insertion-ordered ledger, i.e. the oldest ten;
// the original system sliced the front of the list and that behavior
// is kept until its owner says otherwise.
func (l *Ledger) Summarize(restaurantCount int) Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Summary{
		TotalRevenue:    decimal.Zero,
		TotalBookings:   len(l.bookings),
		RestaurantCount: restaurantCount,
		Recent:          []model.Booking{},
	}
	for _, b := range l.bookings {
		switch b.Status {
		case model.StatusConfirmed:
			s.Confirmed++
			s.TotalRevenue = s.TotalRevenue.Add(b.TotalAmount)
		case model.StatusCancelled:
			s.Cancelled++
		}
	}
	n := len(l.bookings)
	if n > recentLimit {
		n = recentLimit
	}
	s.Recent = append(s.Recent, l.bookings[:n]...)
	return s
}
