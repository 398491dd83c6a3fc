// Package payment simulates the external payment call made before a bid is
// committed. Nothing is settled; the simulator only waits and may decline.
package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/clock"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_payment.go -package=payment auction-front/internal/payment Processor

// DefaultDelay is how long a simulated payment takes.
const DefaultDelay = time.Second

// Processor authorizes a charge for a listing.
type Processor interface {
	Authorize(ctx context.Context, listingID string, amount decimal.Decimal) error
}

// Simulated is a Processor that waits a fixed delay and then approves, or
// declines with the configured probability.
type Simulated struct {
	delay       time.Duration
	failureRate float64
	clock       clock.Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Simulated processor.
type Option func(*Simulated)

// WithFailureRate makes a fraction of payments fail with ErrPaymentDeclined.
// Values are clamped to [0, 1].
func WithFailureRate(rate float64) Option {
	return func(s *Simulated) {
		s.failureRate = min(max(rate, 0), 1)
	}
}

// WithClock replaces the clock used to wait out the delay.
func WithClock(clk clock.Clock) Option {
	return func(s *Simulated) { s.clock = clk }
}

// WithRand replaces the random source used for failure injection.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Simulated) { s.rnd = rnd }
}

// NewSimulated returns a simulated processor that takes delay per payment.
func NewSimulated(delay time.Duration, opts ...Option) *Simulated {
	s := &Simulated{
		delay: delay,
		clock: clock.Real{},
		rnd:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authorize always waits the full delay unless ctx ends first, in which case
// the context error is returned and nothing is charged.
func (s *Simulated) Authorize(ctx context.Context, listingID string, amount decimal.Decimal) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("payment for listing %s: %w", listingID, ctx.Err())
	case <-s.clock.After(s.delay):
	}

	if s.declined() {
		return fmt.Errorf("payment of %s for listing %s: %w", amount, listingID, auctionerrors.ErrPaymentDeclined)
	}
	return nil
}

func (s *Simulated) declined() bool {
	if s.failureRate <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < s.failureRate
}
