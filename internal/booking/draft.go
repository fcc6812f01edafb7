// Package booking implements the core of the system: the draft holder
// accumulating an in-progress selection and the ledger of finalized
// bookings.
package booking

import (
	"errors"
	"sync"

	"table-booking/internal/model"
)

// ErrCheckoutInFlight is returned by BeginCheckout when a confirmation
// for the same user is already pending.  It guards the simulated
// payment delay against double submission.
var ErrCheckoutInFlight = errors.New("booking: checkout already in progress")

// draftState pairs a user's draft with the in-flight checkout latch.
type draftState struct {
	draft    model.Draft
	checkout bool
}

// DraftHolder keeps one transient draft per user.  Selections
// accumulate restaurant → table → info; confirming or abandoning clears
// the draft.  The state machine is:
//
//	empty → restaurant-selected → table-selected → info-attached
//	      → (confirmed, cleared) | (abandoned, cleared)
type DraftHolder struct {
	mu     sync.Mutex
	drafts map[string]*draftState
}

// NewDraftHolder returns an empty DraftHolder.
func NewDraftHolder() *DraftHolder {
	return &DraftHolder{drafts: make(map[string]*draftState)}
}

func (h *DraftHolder) state(userID string) *draftState {
	st, ok := h.drafts[userID]
	if !ok {
		st = &draftState{}
		h.drafts[userID] = st
	}
	return st
}

// Get returns a copy of the user's current draft.
func (h *DraftHolder) Get(userID string) model.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state(userID).draft
}

// SelectRestaurant sets the draft's restaurant and unconditionally
// clears the table and booking info: switching restaurants invalidates
// any in-progress selection built on the previous one.
func (h *DraftHolder) SelectRestaurant(userID string, r model.Restaurant) {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.state(userID)
	st.draft = model.Draft{Restaurant: &r}
}

// SelectTable sets the draft's table.  It does not check that the table
// belongs to the selected restaurant (the caller resolves tables through
// the restaurant) and it does not clear booking info, so info entered
// against a previous table survives the switch.
func (h *DraftHolder) SelectTable(userID string, t model.Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state(userID).draft.Table = &t
}

// SetBookingInfo attaches the form's booking info verbatim.  Validation
// against the table's seat count happens in the form handler, not here.
func (h *DraftHolder) SetBookingInfo(userID string, info model.BookingInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state(userID).draft.BookingInfo = &info
}

// Clear resets the user's draft to empty and releases any checkout
// latch.
func (h *DraftHolder) Clear(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.drafts, userID)
}

// BeginCheckout marks the user's draft as having a confirmation in
// flight.  It fails with ErrCheckoutInFlight if one is already pending,
// so a second submit during the simulated payment delay cannot create a
// duplicate ledger entry.  The caller must pair it with EndCheckout or
// Clear.
func (h *DraftHolder) BeginCheckout(userID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.state(userID)
	if st.checkout {
		return ErrCheckoutInFlight
	}
	st.checkout = true
	return nil
}

// EndCheckout releases the in-flight latch after a failed or abandoned
// confirmation.  A successful confirmation clears the whole draft
// instead.
func (h *DraftHolder) EndCheckout(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.drafts[userID]; ok {
		st.checkout = false
	}
}
