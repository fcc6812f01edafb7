package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-booking/internal/model"
)

func testRestaurant(id, name string) model.Restaurant {
	return model.Restaurant{ID: id, Name: name}
}

func testTable(id string, number, seats int, pricePerSeat int64) model.Table {
	return model.Table{
		ID:           id,
		Number:       number,
		Seats:        seats,
		IsAvailable:  true,
		PricePerSeat: decimal.NewFromInt(pricePerSeat),
	}
}

func testInfo(guests int) model.BookingInfo {
	return model.BookingInfo{
		Name:   "Jordan Doe",
		Email:  "jordan@example.com",
		Phone:  "555-0100",
		Date:   "2026-09-12",
		Time:   "19:00",
		Guests: guests,
	}
}

func TestSelectRestaurantClearsTableAndInfo(t *testing.T) {
	h := NewDraftHolder()

	h.SelectRestaurant("u1", testRestaurant("1", "La Bella Italia"))
	h.SelectTable("u1", testTable("t2", 2, 4, 25))
	h.SetBookingInfo("u1", testInfo(3))

	h.SelectRestaurant("u1", testRestaurant("2", "Sakura Sushi Bar"))

	d := h.Get("u1")
	require.NotNil(t, d.Restaurant)
	assert.Equal(t, "2", d.Restaurant.ID)
	assert.Nil(t, d.Table)
	assert.Nil(t, d.BookingInfo)
}

func TestSelectTablePreservesInfo(t *testing.T) {
	h := NewDraftHolder()

	h.SelectRestaurant("u1", testRestaurant("2", "Sakura Sushi Bar"))
	h.SelectTable("u1", testTable("t7", 7, 8, 35))
	h.SetBookingInfo("u1", testInfo(8))

	// Switching to a smaller table keeps the stale eight-guest info;
	// only the surrounding form re-validates it.
	h.SelectTable("u1", testTable("t5", 5, 2, 35))

	d := h.Get("u1")
	require.NotNil(t, d.Table)
	assert.Equal(t, "t5", d.Table.ID)
	require.NotNil(t, d.BookingInfo)
	assert.Equal(t, 8, d.BookingInfo.Guests)
}

func TestClearResetsEverything(t *testing.T) {
	h := NewDraftHolder()

	h.SelectRestaurant("u1", testRestaurant("1", "La Bella Italia"))
	h.SelectTable("u1", testTable("t1", 1, 2, 25))
	h.SetBookingInfo("u1", testInfo(2))
	h.Clear("u1")

	d := h.Get("u1")
	assert.Nil(t, d.Restaurant)
	assert.Nil(t, d.Table)
	assert.Nil(t, d.BookingInfo)
}

func TestDraftsAreIsolatedPerUser(t *testing.T) {
	h := NewDraftHolder()

	h.SelectRestaurant("u1", testRestaurant("1", "La Bella Italia"))

	assert.Nil(t, h.Get("u2").Restaurant)
}

func TestCheckoutLatchBlocksReentry(t *testing.T) {
	h := NewDraftHolder()

	require.NoError(t, h.BeginCheckout("u1"))
	assert.ErrorIs(t, h.BeginCheckout("u1"), ErrCheckoutInFlight)

	// Another user's checkout is unaffected.
	assert.NoError(t, h.BeginCheckout("u2"))

	h.EndCheckout("u1")
	assert.NoError(t, h.BeginCheckout("u1"))
}

func TestClearReleasesCheckoutLatch(t *testing.T) {
	h := NewDraftHolder()

	require.NoError(t, h.BeginCheckout("u1"))
	h.Clear("u1")
	assert.NoError(t, h.BeginCheckout("u1"))
}
