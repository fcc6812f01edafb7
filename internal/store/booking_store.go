package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"table-booking/internal/model"
)

// bookingsKey names the flat record holding the serialized ledger.
const bookingsKey = "bookings"

// BookingStore persists the booking ledger as one JSON array.  It is
// loaded once at startup and rewritten in full after every mutation.
type BookingStore struct {
	kv KV
}

// NewBookingStore returns a BookingStore over the given KV backend.
func NewBookingStore(kv KV) *BookingStore { return &BookingStore{kv: kv} }

// Load reads the full ledger.  A missing record yields an empty ledger.
// A record that fails to parse is logged and likewise treated as empty;
// the next mutation will overwrite it.
func (s *BookingStore) Load(ctx context.Context) ([]model.Booking, error) {
	raw, err := s.kv.Get(ctx, bookingsKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		log.Printf("store: corrupt bookings record, starting empty: %v", err)
		return nil, nil
	}
	return bookings, nil
}

// Save serializes and writes the full ledger.
func (s *BookingStore) Save(ctx context.Context, bookings []model.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, bookingsKey, string(raw))
}
