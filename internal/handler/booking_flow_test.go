package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-booking/internal/booking"
	"table-booking/internal/catalog"
	"table-booking/internal/model"
	"table-booking/internal/payment"
	"table-booking/internal/queue"
	"table-booking/internal/store"
)

// mapKV keeps the ledger in memory for handler tests.
type mapKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMapKV() *mapKV { return &mapKV{data: make(map[string]string)} }

func (m *mapKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *mapKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mapKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newFlowFixture(t *testing.T) (*FlowHandler, *booking.Ledger) {
	t.Helper()
	ledger, err := booking.NewLedger(context.Background(), store.NewBookingStore(newMapKV()))
	require.NoError(t, err)
	h := NewFlowHandler(
		catalog.New(),
		booking.NewDraftHolder(),
		ledger,
		payment.NewSimulated(0), // no artificial delay in tests
		queue.NewPublisher(""),  // publishing disabled
	)
	return h, ledger
}

// do invokes an echo handler directly with an authenticated context.
func do(t *testing.T, handlerFunc echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	return rec, handlerFunc(c)
}

func TestBookingFlowHappyPath(t *testing.T) {
	h, ledger := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"2"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, err = do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t6"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	info := `{"name":"Jordan Doe","email":"jordan@example.com","phone":"555-0100","date":"2026-09-12","time":"19:00","guests":3}`
	rec, err = do(t, h.SetBookingInfo, http.MethodPost, "/v1/draft/info", info)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, err = do(t, h.Checkout, http.MethodPost, "/v1/checkout", `{"payment_method":"card"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)

	var b model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, "Sakura Sushi Bar", b.RestaurantName)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	assert.Equal(t, "105", b.TotalAmount.String())

	// Ledger has exactly one entry; the draft is cleared.
	assert.Len(t, ledger.List(), 1)
	assert.Nil(t, h.Drafts.Get("u1").Restaurant)
}

func TestSelectTableWithoutRestaurant(t *testing.T) {
	h, _ := newFlowFixture(t)

	rec, err := do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t6"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":"restaurant"`)
}

func TestSelectTableFromOtherRestaurant(t *testing.T) {
	h, _ := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"1"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	// t6 belongs to restaurant 2.
	rec, err = do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t6"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectUnavailableTable(t *testing.T) {
	h, _ := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"1"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, err = do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t3"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingInfoValidation(t *testing.T) {
	h, _ := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"2"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, err = do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t6"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	// Guest count above the table's four seats.
	tooMany := `{"name":"A","email":"a@b.c","phone":"1","date":"2026-09-12","time":"19:00","guests":5}`
	rec, err = do(t, h.SetBookingInfo, http.MethodPost, "/v1/draft/info", tooMany)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing required fields.
	missing := `{"name":"","email":"a@b.c","phone":"1","date":"2026-09-12","time":"19:00","guests":2}`
	rec, err = do(t, h.SetBookingInfo, http.MethodPost, "/v1/draft/info", missing)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Zero guests.
	zero := `{"name":"A","email":"a@b.c","phone":"1","date":"2026-09-12","time":"19:00","guests":0}`
	rec, err = do(t, h.SetBookingInfo, http.MethodPost, "/v1/draft/info", zero)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutIncompleteDraft(t *testing.T) {
	h, ledger := newFlowFixture(t)

	rec, err := do(t, h.Checkout, http.MethodPost, "/v1/checkout", `{"payment_method":"card"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, ledger.List())
}

func TestCheckoutWhileInFlight(t *testing.T) {
	h, ledger := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"2"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, err = do(t, h.SelectTable, http.MethodPost, "/v1/draft/table", `{"table_id":"t6"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	info := `{"name":"Jordan Doe","email":"jordan@example.com","phone":"555-0100","date":"2026-09-12","time":"19:00","guests":3}`
	rec, err = do(t, h.SetBookingInfo, http.MethodPost, "/v1/draft/info", info)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	// Simulate a submit already pending during the payment delay.
	require.NoError(t, h.Drafts.BeginCheckout("u1"))

	rec, err = do(t, h.Checkout, http.MethodPost, "/v1/checkout", `{"payment_method":"card"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Empty(t, ledger.List(), "double submit must not create a booking")
}

func TestAbandonDraft(t *testing.T) {
	h, _ := newFlowFixture(t)

	rec, err := do(t, h.SelectRestaurant, http.MethodPost, "/v1/draft/restaurant", `{"restaurant_id":"1"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, err = do(t, h.AbandonDraft, http.MethodDelete, "/v1/draft", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, h.Drafts.Get("u1").Restaurant)
}
