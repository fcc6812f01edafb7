package model

// Draft is the in-progress, unconfirmed booking selection.  All three
// fields must be present before the draft can be confirmed; selection
// steps accumulate them in order (restaurant, then table, then info).
// A nil field means the step has not been taken yet.
type Draft struct {
	Restaurant  *Restaurant  `json:"restaurant,omitempty"`
	Table       *Table       `json:"table,omitempty"`
	BookingInfo *BookingInfo `json:"booking_info,omitempty"`
}

// Complete reports whether every step of the draft has been filled in.
func (d Draft) Complete() bool {
	return d.Restaurant != nil && d.Table != nil && d.BookingInfo != nil
}
