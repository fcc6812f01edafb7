package model

import "github.com/shopspring/decimal"

// Restaurant is a venue in the compiled-in catalog.  Restaurants are
// immutable seed data: they are created once at startup and never
// mutated afterwards.  Each restaurant owns an ordered list of tables.
//
// Fields:
//  ID          – unique catalog identifier.
//  Name        – display name of the restaurant.
//  Cuisine     – cuisine label used by search (e.g. "Italian").
//  Rating      – aggregate rating between 0 and 5.
//  Image       – reference to the restaurant's image asset.
//  PriceRange  – price tier label (e.g. "$$").
//  Description – short marketing description.
//  Tables      – ordered list of tables belonging to this restaurant.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	PriceRange  string  `json:"price_range"`
	Description string  `json:"description"`
	Tables      []Table `json:"tables"`
}

// Table is a bookable table within a restaurant.  Availability is part
// of the seed data and is never flipped by a confirmed booking; the
// system performs no inventory tracking.
//
// Fields:
//  ID           – identifier unique within the owning restaurant.
//  Number       – human-facing table number.
//  Seats        – positive seat count; caps the guest count of a draft.
//  IsAvailable  – static availability flag from the seed data.
//  PricePerSeat – non-negative price charged per guest.
type Table struct {
	ID           string          `json:"id"`
	Number       int             `json:"number"`
	Seats        int             `json:"seats"`
	IsAvailable  bool            `json:"is_available"`
	PricePerSeat decimal.Decimal `json:"price_per_seat"`
}
