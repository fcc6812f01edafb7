// Package handler exposes HTTP handlers for both authenticated and
// public endpoints.  This file defines the public browsing API: the
// catalog can be listed, searched and inspected without authentication.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"table-booking/internal/catalog"
	"table-booking/internal/model"
)

// BrowseHandler serves the restaurant catalog.
type BrowseHandler struct {
	Catalog *catalog.Catalog
}

func NewBrowseHandler(cat *catalog.Catalog) *BrowseHandler {
	return &BrowseHandler{Catalog: cat}
}

// restaurantSummary is the list-view shape: everything except the
// table grid.
type restaurantSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	PriceRange  string  `json:"price_range"`
	Description string  `json:"description"`
}

func summarize(r model.Restaurant) restaurantSummary {
	return restaurantSummary{
		ID:          r.ID,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Rating:      r.Rating,
		Image:       r.Image,
		PriceRange:  r.PriceRange,
		Description: r.Description,
	}
}

// ListRestaurants handles GET /v1/restaurants.  The optional ?q= query
// filters by name or cuisine, case-insensitively.
func (h *BrowseHandler) ListRestaurants(c echo.Context) error {
	restaurants := h.Catalog.Search(c.QueryParam("q"))
	out := make([]restaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, summarize(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetRestaurant handles GET /v1/restaurants/:id and returns the full
// restaurant including its table grid.
func (h *BrowseHandler) GetRestaurant(c echo.Context) error {
	r, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
	}
	return c.JSON(http.StatusOK, r)
}

// GetTables handles GET /v1/restaurants/:id/tables.  Availability in
// the response is the static seed value; bookings never change it.
func (h *BrowseHandler) GetTables(c echo.Context) error {
	r, ok := h.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": r.Tables})
}
