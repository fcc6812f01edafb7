package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-booking/internal/booking"
	"table-booking/internal/catalog"
	"table-booking/internal/model"
	"table-booking/internal/queue"
	"table-booking/internal/store"
)

func newLedgerWith(t *testing.T, confirmations int) *booking.Ledger {
	t.Helper()
	ledger, err := booking.NewLedger(context.Background(), store.NewBookingStore(newMapKV()))
	require.NoError(t, err)

	cat := catalog.New()
	r, ok := cat.Get("2")
	require.True(t, ok)
	tbl, ok := cat.FindTable("2", "t6")
	require.True(t, ok)
	info := model.BookingInfo{
		Name: "Jordan Doe", Email: "jordan@example.com", Phone: "555-0100",
		Date: "2026-09-12", Time: "19:00", Guests: 3,
	}
	for i := 0; i < confirmations; i++ {
		_, err := ledger.Confirm(context.Background(), model.Draft{Restaurant: &r, Table: &tbl, BookingInfo: &info})
		require.NoError(t, err)
	}
	return ledger
}

func TestListBookings(t *testing.T) {
	h := NewBookingsHandler(newLedgerWith(t, 2), queue.NewPublisher(""))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []model.Booking `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
}

func TestCancelBooking(t *testing.T) {
	ledger := newLedgerWith(t, 1)
	h := NewBookingsHandler(ledger, queue.NewPublisher(""))
	id := ledger.List()[0].ID

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/"+id+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, model.StatusCancelled, ledger.List()[0].Status)
}

func TestCancelUnknownBookingStill204(t *testing.T) {
	ledger := newLedgerWith(t, 1)
	h := NewBookingsHandler(ledger, queue.NewPublisher(""))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/booking-0/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("booking-0")
	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, model.StatusConfirmed, ledger.List()[0].Status)
}

func TestAdminSummary(t *testing.T) {
	ledger := newLedgerWith(t, 3)
	require.True(t, ledger.Cancel(context.Background(), ledger.List()[0].ID))
	h := NewAdminHandler(ledger, catalog.New())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/summary", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Summary(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var s booking.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 3, s.TotalBookings)
	assert.Equal(t, 2, s.Confirmed)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 4, s.RestaurantCount)
	assert.Equal(t, "210", s.TotalRevenue.String())
	assert.Len(t, s.Recent, 3)
}

func TestAdminSummaryEmptyLedger(t *testing.T) {
	ledger := newLedgerWith(t, 0)
	h := NewAdminHandler(ledger, catalog.New())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/summary", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Summary(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var s booking.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Zero(t, s.TotalBookings)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.NotNil(t, s.Recent)
	assert.Empty(t, s.Recent)
}
