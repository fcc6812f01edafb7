package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"table-booking/internal/booking"
	"table-booking/internal/catalog"
)

// AdminHandler serves the dashboard summary.  Access is gated by the
// RequireAdmin middleware; nothing below the handler checks the flag.
type AdminHandler struct {
	Ledger  *booking.Ledger
	Catalog *catalog.Catalog
}

func NewAdminHandler(ledger *booking.Ledger, cat *catalog.Catalog) *AdminHandler {
	return &AdminHandler{Ledger: ledger, Catalog: cat}
}

// Summary handles GET /v1/admin/summary: revenue from confirmed
// bookings, total/confirmed/cancelled counts, restaurant count and the
// recent-bookings list.
func (h *AdminHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Ledger.Summarize(h.Catalog.Count()))
}
