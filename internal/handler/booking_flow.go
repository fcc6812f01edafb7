package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"table-booking/internal/booking"
	"table-booking/internal/catalog"
	"table-booking/internal/model"
	"table-booking/internal/payment"
	"table-booking/internal/queue"
)

// FlowHandler drives the booking flow: draft accumulation step by step
// and the final checkout.  All methods assume JWT middleware has put
// the user id in the context.  Precondition violations (reaching a step
// before its prerequisite) answer 409 with the safe earlier step to go
// back to, which is this API's version of the original's redirect.
type FlowHandler struct {
	Catalog  *catalog.Catalog
	Drafts   *booking.DraftHolder
	Ledger   *booking.Ledger
	Payments payment.Processor
	Events   *queue.Publisher
}

func NewFlowHandler(cat *catalog.Catalog, drafts *booking.DraftHolder, ledger *booking.Ledger, payments payment.Processor, events *queue.Publisher) *FlowHandler {
	if cat == nil || drafts == nil || ledger == nil || payments == nil {
		panic("nil dependency passed to NewFlowHandler")
	}
	return &FlowHandler{Catalog: cat, Drafts: drafts, Ledger: ledger, Payments: payments, Events: events}
}

// Flow steps clients are sent back to on precondition violations.
const (
	stepRestaurant = "restaurant"
	stepTable      = "table"
	stepInfo       = "info"
)

// userID extracts the authenticated user's id from the context.
func userID(c echo.Context) (string, bool) {
	id, ok := c.Get("user_id").(string)
	return id, ok && id != ""
}

// ----- DTOs -----

type selectRestaurantReq struct {
	RestaurantID string `json:"restaurant_id"`
}
type selectTableReq struct {
	TableID string `json:"table_id"`
}
type bookingInfoReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}
type checkoutReq struct {
	PaymentMethod string `json:"payment_method"`
}

// GetDraft handles GET /v1/draft and returns the current selection.
func (h *FlowHandler) GetDraft(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Drafts.Get(uid))
}

// AbandonDraft handles DELETE /v1/draft, resetting the selection.
func (h *FlowHandler) AbandonDraft(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Drafts.Clear(uid)
	return c.NoContent(http.StatusNoContent)
}

// SelectRestaurant handles POST /v1/draft/restaurant.  Picking a
// restaurant resets any table or info previously selected.
func (h *FlowHandler) SelectRestaurant(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req selectRestaurantReq
	if err := c.Bind(&req); err != nil || req.RestaurantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "restaurant_id required"})
	}
	r, found := h.Catalog.Get(req.RestaurantID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
	}
	h.Drafts.SelectRestaurant(uid, r)
	return c.JSON(http.StatusOK, h.Drafts.Get(uid))
}

// SelectTable handles POST /v1/draft/table.  The table is resolved
// within the draft's restaurant; without a restaurant the client is
// sent back to that step.
func (h *FlowHandler) SelectTable(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req selectTableReq
	if err := c.Bind(&req); err != nil || req.TableID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id required"})
	}
	d := h.Drafts.Get(uid)
	if d.Restaurant == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "select a restaurant first", "step": stepRestaurant})
	}
	t, found := h.Catalog.FindTable(d.Restaurant.ID, req.TableID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
	}
	if !t.IsAvailable {
		return c.JSON(http.StatusConflict, echo.Map{"error": "table not available"})
	}
	h.Drafts.SelectTable(uid, t)
	return c.JSON(http.StatusOK, h.Drafts.Get(uid))
}

// SetBookingInfo handles POST /v1/draft/info.  This is where the form's
// validation lives: required fields and 1 ≤ guests ≤ table seats.  The
// draft holder itself stores whatever it is given.
func (h *FlowHandler) SetBookingInfo(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookingInfoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	d := h.Drafts.Get(uid)
	if d.Table == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "select a table first", "step": stepTable})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please fill in all required fields"})
	}
	if req.Guests < 1 || req.Guests > d.Table.Seats {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest count must be between 1 and the table's seats"})
	}
	h.Drafts.SetBookingInfo(uid, model.BookingInfo{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	return c.JSON(http.StatusOK, h.Drafts.Get(uid))
}

// Checkout handles POST /v1/checkout.  It charges the simulated
// processor, confirms the draft into the ledger, publishes the
// confirmation event and clears the draft.  The in-flight latch makes a
// second submit during the payment delay a 409 instead of a duplicate
// booking.
func (h *FlowHandler) Checkout(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req checkoutReq
	if err := c.Bind(&req); err != nil || req.PaymentMethod == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method required"})
	}
	d := h.Drafts.Get(uid)
	switch {
	case d.Restaurant == nil:
		return c.JSON(http.StatusConflict, echo.Map{"error": "select a restaurant first", "step": stepRestaurant})
	case d.Table == nil:
		return c.JSON(http.StatusConflict, echo.Map{"error": "select a table first", "step": stepTable})
	case d.BookingInfo == nil:
		return c.JSON(http.StatusConflict, echo.Map{"error": "enter booking details first", "step": stepInfo})
	}

	if err := h.Drafts.BeginCheckout(uid); err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "payment already in progress"})
	}

	ctx := c.Request().Context()
	amount := d.Table.PricePerSeat.Mul(decimal.NewFromInt(int64(d.BookingInfo.Guests)))
	if err := h.Payments.Charge(ctx, req.PaymentMethod, amount); err != nil {
		h.Drafts.EndCheckout(uid)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	b, err := h.Ledger.Confirm(ctx, d)
	if err != nil {
		h.Drafts.EndCheckout(uid)
		if errors.Is(err, booking.ErrIncompleteDraft) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking selection incomplete", "step": stepRestaurant})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "confirm failed"})
	}
	h.Drafts.Clear(uid)

	if h.Events != nil {
		// Fire-and-forget; a broker outage never fails the booking.
		_ = h.Events.Publish(ctx, queue.QueueBookingConfirmed, queue.BookingConfirmedEvent{
			BookingID:      b.ID,
			RestaurantID:   b.RestaurantID,
			RestaurantName: b.RestaurantName,
			TableNumber:    b.TableNumber,
			GuestName:      b.BookingInfo.Name,
			Date:           b.BookingInfo.Date,
			Time:           b.BookingInfo.Time,
			Guests:         b.BookingInfo.Guests,
			TotalAmount:    b.TotalAmount.String(),
			ConfirmedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, b)
}
