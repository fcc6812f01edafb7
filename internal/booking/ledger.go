package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"table-booking/internal/model"
	"table-booking/internal/monitoring"
	"table-booking/internal/store"
)

// ErrIncompleteDraft signals that Confirm was called before every step
// of the draft was filled in.  The ledger is left untouched; callers
// are expected to send the user back to the missing step rather than
// surface this as an error message.
var ErrIncompleteDraft = errors.New("booking: draft is incomplete")

// Ledger is the durable, append-only list of finalized bookings.  The
// list lives in memory and is rewritten to the store in full after
// every mutation; entries are appended by Confirm and only ever change
// again through Cancel flipping their status.
type Ledger struct {
	mu       sync.Mutex
	store    *store.BookingStore
	bookings []model.Booking
	now      func() time.Time
	lastID   int64
}

// NewLedger loads the persisted ledger once and returns a Ledger over
// it.  A missing or corrupt record starts the ledger empty.
func NewLedger(ctx context.Context, st *store.BookingStore) (*Ledger, error) {
	bookings, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return &Ledger{store: st, bookings: bookings, now: time.Now}, nil
}

// nextID returns a generation-time-ordered unique id.  Millisecond
// timestamps collide under test clocks, so equal or older stamps are
// bumped past the last issued one.
func (l *Ledger) nextID() string {
	ms := l.now().UnixMilli()
	if ms <= l.lastID {
		ms = l.lastID + 1
	}
	l.lastID = ms
	return fmt.Sprintf("booking-%d", ms)
}

// Confirm materializes a complete draft into a new confirmed ledger
// entry.  The total is always pricePerSeat × guests at this moment;
// restaurant and table fields are snapshotted so the entry no longer
// depends on the catalog.  An incomplete draft returns
// ErrIncompleteDraft and leaves the ledger unchanged.
func (l *Ledger) Confirm(ctx context.Context, d model.Draft) (model.Booking, error) {
	if !d.Complete() {
		return model.Booking{}, ErrIncompleteDraft
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	total := d.Table.PricePerSeat.Mul(decimal.NewFromInt(int64(d.BookingInfo.Guests)))
	b := model.Booking{
		ID:             l.nextID(),
		RestaurantID:   d.Restaurant.ID,
		RestaurantName: d.Restaurant.Name,
		TableID:        d.Table.ID,
		TableNumber:    d.Table.Number,
		BookingInfo:    *d.BookingInfo,
		TotalAmount:    total,
		Status:         model.StatusConfirmed,
		CreatedAt:      l.now().UTC(),
	}
	l.bookings = append(l.bookings, b)
	l.persist(ctx)

	amount, _ := total.Float64()
	monitoring.RecordConfirmed(b.RestaurantName, amount)
	return b, nil
}

// Cancel sets the status of the identified booking to cancelled,
// regardless of its current status; re-cancelling is a harmless
// overwrite.  An unknown id is a silent no-op.  The return value
// reports whether an entry was found so callers can skip events and
// metrics for no-ops.
func (l *Ledger) Cancel(ctx context.Context, bookingID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.bookings {
		if l.bookings[i].ID == bookingID {
			l.bookings[i].Status = model.StatusCancelled
			l.persist(ctx)
			monitoring.RecordCancelled()
			return true
		}
	}
	return false
}

// List returns the full ledger in insertion order, oldest first.
func (l *Ledger) List() []model.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// persist rewrites the whole ledger.  A store failure is logged and the
// in-memory mutation is kept: the store has last-write-wins semantics
// and the next mutation rewrites everything anyway.
func (l *Ledger) persist(ctx context.Context) {
	if err := l.store.Save(ctx, l.bookings); err != nil {
		log.Printf("booking: persist ledger failed: %v", err)
	}
}
