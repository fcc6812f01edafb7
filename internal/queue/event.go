// Package queue defines the booking events exchanged over the message
// broker and the publisher that emits them.  Publishing is
// fire-and-forget: a broker outage must never fail a booking.
package queue

// Queue names.  Both queues are declared durable.
const (
	QueueBookingConfirmed = "booking.confirmed"
	QueueBookingCancelled = "booking.cancelled"
)

// BookingConfirmedEvent is published when a draft is confirmed into a
// ledger entry.  It carries enough context for downstream consumers to
// notify or aggregate without reading the store.
type BookingConfirmedEvent struct {
	BookingID      string `json:"booking_id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	TableNumber    int    `json:"table_number"`
	GuestName      string `json:"guest_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Guests         int    `json:"guests"`
	TotalAmount    string `json:"total_amount"`
	ConfirmedAt    string `json:"confirmed_at"`
}

// BookingCancelledEvent is published when an existing ledger entry is
// cancelled.  No-op cancels of unknown ids produce no event.
type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	CancelledAt string `json:"cancelled_at"`
}
