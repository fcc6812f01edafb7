// Package catalog holds the compiled-in restaurant seed data and read
// operations over it.  The catalog is immutable after construction:
// nothing in the booking flow mutates restaurants or tables, including
// table availability, which keeps whatever value the seed assigns it.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"table-booking/internal/model"
)

// Catalog provides lookups and search over the seeded restaurants.
type Catalog struct {
	restaurants []model.Restaurant
	byID        map[string]*model.Restaurant
}

// New returns a Catalog populated with the built-in seed data.
func New() *Catalog {
	return newWith(seed())
}

func newWith(restaurants []model.Restaurant) *Catalog {
	c := &Catalog{
		restaurants: restaurants,
		byID:        make(map[string]*model.Restaurant, len(restaurants)),
	}
	for i := range c.restaurants {
		c.byID[c.restaurants[i].ID] = &c.restaurants[i]
	}
	return c
}

// All returns every restaurant in seed order.
func (c *Catalog) All() []model.Restaurant {
	return c.restaurants
}

// Count returns the number of restaurants in the catalog.
func (c *Catalog) Count() int { return len(c.restaurants) }

// Get looks up a restaurant by id.  The second return value reports
// whether it exists; an unknown id is not an error.
func (c *Catalog) Get(id string) (model.Restaurant, bool) {
	r, ok := c.byID[id]
	if !ok {
		return model.Restaurant{}, false
	}
	return *r, true
}

// Search returns restaurants whose name or cuisine contains the query,
// case-insensitively.  An empty query matches everything.
func (c *Catalog) Search(query string) []model.Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.restaurants
	}
	out := make([]model.Restaurant, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Cuisine), q) {
			out = append(out, r)
		}
	}
	return out
}

// FindTable looks up a table by id within a restaurant.  Both lookups
// are treated as plain misses when absent.
func (c *Catalog) FindTable(restaurantID, tableID string) (model.Table, bool) {
	r, ok := c.byID[restaurantID]
	if !ok {
		return model.Table{}, false
	}
	for _, t := range r.Tables {
		if t.ID == tableID {
			return t, true
		}
	}
	return model.Table{}, false
}

// price is a shorthand for building per-seat prices in the seed.
func price(dollars int64) decimal.Decimal { return decimal.NewFromInt(dollars) }

// seed returns the static restaurant data.  Table availability here is
// final: confirmed bookings never flip it.
func seed() []model.Restaurant {
	return []model.Restaurant{
		{
			ID:          "1",
			Name:        "La Bella Italia",
			Cuisine:     "Italian",
			Rating:      4.8,
			Image:       "/assets/restaurant-1.jpg",
			PriceRange:  "$$",
			Description: "Authentic Italian cuisine with fresh homemade pasta and wood-fired pizzas.",
			Tables: []model.Table{
				{ID: "t1", Number: 1, Seats: 2, IsAvailable: true, PricePerSeat: price(25)},
				{ID: "t2", Number: 2, Seats: 4, IsAvailable: true, PricePerSeat: price(25)},
				{ID: "t3", Number: 3, Seats: 6, IsAvailable: false, PricePerSeat: price(25)},
				{ID: "t4", Number: 4, Seats: 2, IsAvailable: true, PricePerSeat: price(25)},
			},
		},
		{
			ID:          "2",
			Name:        "Sakura Sushi Bar",
			Cuisine:     "Japanese",
			Rating:      4.9,
			Image:       "/assets/restaurant-2.jpg",
			PriceRange:  "$$$",
			Description: "Modern Japanese fusion with premium sushi and sashimi selections.",
			Tables: []model.Table{
				{ID: "t5", Number: 5, Seats: 2, IsAvailable: true, PricePerSeat: price(35)},
				{ID: "t6", Number: 6, Seats: 4, IsAvailable: true, PricePerSeat: price(35)},
				{ID: "t7", Number: 7, Seats: 8, IsAvailable: true, PricePerSeat: price(35)},
			},
		},
		{
			ID:          "3",
			Name:        "Prime Steakhouse",
			Cuisine:     "American",
			Rating:      4.7,
			Image:       "/assets/restaurant-3.jpg",
			PriceRange:  "$$$",
			Description: "Premium cuts of beef and classic American steakhouse experience.",
			Tables: []model.Table{
				{ID: "t8", Number: 8, Seats: 2, IsAvailable: true, PricePerSeat: price(40)},
				{ID: "t9", Number: 9, Seats: 4, IsAvailable: false, PricePerSeat: price(40)},
				{ID: "t10", Number: 10, Seats: 6, IsAvailable: true, PricePerSeat: price(40)},
			},
		},
		{
			ID:          "4",
			Name:        "Le Petit Bistro",
			Cuisine:     "French",
			Rating:      4.6,
			Image:       "/assets/restaurant-4.jpg",
			PriceRange:  "$$",
			Description: "Cozy French bistro offering classic dishes and fine wines.",
			Tables: []model.Table{
				{ID: "t11", Number: 11, Seats: 2, IsAvailable: true, PricePerSeat: price(30)},
				{ID: "t12", Number: 12, Seats: 4, IsAvailable: true, PricePerSeat: price(30)},
			},
		},
	}
}
