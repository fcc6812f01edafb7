package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"table-booking/internal/booking"
	"table-booking/internal/catalog"
	"table-booking/internal/config"
	"table-booking/internal/handler"
	"table-booking/internal/identity"
	"table-booking/internal/payment"
	"table-booking/internal/queue"
	"table-booking/internal/router"
	"table-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env always wins
	cfg := config.Load()

	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	kv := store.NewRedisKV(rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ledger, err := booking.NewLedger(ctx, store.NewBookingStore(kv))
	if err != nil {
		log.Fatalf("ledger: %v", err)
	}

	verifier, err := identity.NewStaticVerifier(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("identity: %v", err)
	}
	provider := identity.NewProvider(verifier, store.NewUserStore(kv))
	if u, ok, err := provider.Current(ctx); err == nil && ok {
		log.Printf("restored session for %s", u.Email)
	}

	cat := catalog.New()
	drafts := booking.NewDraftHolder()
	events := queue.NewPublisher(cfg.AMQPURL)
	if events.Enabled() {
		go queue.StartConfirmationConsumer(cfg.AMQPURL)
	}

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, provider),
		Browse:   handler.NewBrowseHandler(cat),
		Flow:     handler.NewFlowHandler(cat, drafts, ledger, payment.NewSimulated(cfg.PaymentDelay), events),
		Bookings: handler.NewBookingsHandler(ledger, events),
		Admin:    handler.NewAdminHandler(ledger, cat),
	}

	e := echo.New()
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
