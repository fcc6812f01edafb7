package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"table-booking/internal/booking"
	"table-booking/internal/queue"
)

// BookingsHandler serves the finalized ledger: listing and cancelling.
type BookingsHandler struct {
	Ledger *booking.Ledger
	Events *queue.Publisher
}

func NewBookingsHandler(ledger *booking.Ledger, events *queue.Publisher) *BookingsHandler {
	return &BookingsHandler{Ledger: ledger, Events: events}
}

// List handles GET /v1/bookings, returning the full ledger in
// insertion order, oldest first.
func (h *BookingsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Ledger.List()})
}

// Cancel handles POST /v1/bookings/:id/cancel.  Cancelling sets the
// entry's status to cancelled whatever it was before; an unknown id is
// a no-op.  Both answer 204: the caller cannot tell the difference and
// is not meant to.
func (h *BookingsHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if h.Ledger.Cancel(ctx, id) && h.Events != nil {
		_ = h.Events.Publish(ctx, queue.QueueBookingCancelled, queue.BookingCancelledEvent{
			BookingID:   id,
			CancelledAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.NoContent(http.StatusNoContent)
}
