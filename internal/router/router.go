// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"table-booking/internal/config"
	"table-booking/internal/handler"
	"table-booking/internal/middleware"
)

// Handlers collects every handler the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	Browse   *handler.BrowseHandler
	Flow     *handler.FlowHandler
	Bookings *handler.BookingsHandler
	Admin    *handler.AdminHandler
}

// Register wires all routes onto the Echo instance.  Public browsing
// and health/metrics need no token; the booking flow and ledger live
// behind JWT auth; the admin summary additionally requires the
// is_admin claim.  Auth endpoints are rate limited per client IP.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Unauthenticated auth operations, rate limited.
	authGroup := e.Group("/v1/auth")
	authGroup.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/signup", h.Auth.Signup)
	authGroup.POST("/logout", h.Auth.Logout)

	// Public catalog browsing.
	e.GET("/v1/restaurants", h.Browse.ListRestaurants)
	e.GET("/v1/restaurants/:id", h.Browse.GetRestaurant)
	e.GET("/v1/restaurants/:id/tables", h.Browse.GetTables)

	// Everything below requires a valid session token.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret))
	auth.GET("/me", h.Auth.Me)

	auth.GET("/draft", h.Flow.GetDraft)
	auth.DELETE("/draft", h.Flow.AbandonDraft)
	auth.POST("/draft/restaurant", h.Flow.SelectRestaurant)
	auth.POST("/draft/table", h.Flow.SelectTable)
	auth.POST("/draft/info", h.Flow.SetBookingInfo)
	auth.POST("/checkout", h.Flow.Checkout)

	auth.GET("/bookings", h.Bookings.List)
	auth.POST("/bookings/:id/cancel", h.Bookings.Cancel)

	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/summary", h.Admin.Summary)
}
