// Package payment simulates the payment collaborator.  There is no real
// gateway behind it: Charge validates the method, waits out an
// artificial network round-trip and succeeds.  The Processor interface
// is the seam where a real gateway client would plug in.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Methods accepted by the checkout form.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetbanking = "netbanking"
)

// Processor charges an amount through a payment method.
type Processor interface {
	Charge(ctx context.Context, method string, amount decimal.Decimal) error
}

// Simulated is the always-succeeding stub processor.  Delay models the
// gateway round-trip; during it the caller's checkout latch is what
// prevents double submission.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns a Simulated processor with the given delay.
func NewSimulated(delay time.Duration) *Simulated { return &Simulated{Delay: delay} }

// Charge implements Processor.  It fails only on an unknown method or a
// cancelled context.
func (s *Simulated) Charge(ctx context.Context, method string, amount decimal.Decimal) error {
	switch method {
	case MethodCard, MethodUPI, MethodNetbanking:
	default:
		return fmt.Errorf("payment: unsupported method %q", method)
	}
	if s.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
