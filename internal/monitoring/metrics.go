// Package monitoring exposes Prometheus metrics for the booking flow.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsConfirmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total bookings confirmed per restaurant",
		},
		[]string{"restaurant"},
	)

	bookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total bookings cancelled",
		},
	)

	confirmedRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_revenue_total",
			Help: "Revenue from confirmed bookings",
		},
	)
)

// RecordConfirmed counts a confirmation and adds its amount to the
// revenue counter.
func RecordConfirmed(restaurant string, amount float64) {
	bookingsConfirmed.WithLabelValues(restaurant).Inc()
	confirmedRevenue.Add(amount)
}

// RecordCancelled counts a cancellation that actually changed a ledger
// entry.  No-op cancels are not recorded.
func RecordCancelled() {
	bookingsCancelled.Inc()
}
