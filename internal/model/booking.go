package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking status values.  StatusPending is part of the lifecycle
// vocabulary but is never produced by confirmation, which always
// writes StatusConfirmed directly.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// BookingInfo carries the contact and visit details entered on the
// booking form.  It is created once per draft and is immutable after
// being attached to a confirmed booking.  The guest count is validated
// against the selected table's seat count at form-submit time only.
type BookingInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// Booking is a finalized ledger entry.  Restaurant and table fields are
// snapshots taken at confirmation time so the entry stays meaningful
// even if the catalog were to change.  Entries are appended on
// confirmation and mutated only by cancellation; they are never deleted.
//
// Fields:
//  ID             – unique, generation-time-ordered identifier.
//  RestaurantID   – snapshot of the restaurant's catalog id.
//  RestaurantName – snapshot of the restaurant's name.
//  TableID        – snapshot of the table id.
//  TableNumber    – snapshot of the table number.
//  BookingInfo    – the attached contact/visit details.
//  TotalAmount    – PricePerSeat × Guests, fixed at confirmation.
//  Status         – pending, confirmed or cancelled.
//  CreatedAt      – confirmation timestamp in UTC.
type Booking struct {
	ID             string          `json:"id"`
	RestaurantID   string          `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	TableID        string          `json:"table_id"`
	TableNumber    int             `json:"table_number"`
	BookingInfo    BookingInfo     `json:"booking_info"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
