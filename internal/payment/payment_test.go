package payment

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSimulated_Authorize(t *testing.T) {
	start := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		opts        []Option
		expectError error
	}{
		{name: "always_succeeds_by_default"},
		{name: "zero_failure_rate", opts: []Option{WithFailureRate(0)}},
		{name: "certain_failure", opts: []Option{WithFailureRate(1)}, expectError: auctionerrors.ErrPaymentDeclined},
		{name: "rate_above_one_is_clamped", opts: []Option{WithFailureRate(7)}, expectError: auctionerrors.ErrPaymentDeclined},
		{name: "negative_rate_is_clamped", opts: []Option{WithFailureRate(-3)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			clk := clock.NewMock(start)
			opts := append([]Option{WithClock(clk)}, tc.opts...)
			p := NewSimulated(DefaultDelay, opts...)

			err := p.Authorize(context.Background(), "1", decimal.NewFromInt(40000))
			if tc.expectError != nil {
				require.ErrorIs(t, err, tc.expectError)
			} else {
				require.NoError(t, err)
			}

			// the full delay elapses either way
			require.True(t, clk.Now().Equal(start.Add(DefaultDelay)))
		})
	}
}

func TestSimulated_AuthorizeCancelled(t *testing.T) {
	t.Parallel()

	p := NewSimulated(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Authorize(ctx, "1", decimal.NewFromInt(10))
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got %v", err)
}

func TestSimulated_AuthorizeWaitsForDelay(t *testing.T) {
	t.Parallel()

	delay := 20 * time.Millisecond
	p := NewSimulated(delay)

	began := time.Now()
	require.NoError(t, p.Authorize(context.Background(), "2", decimal.NewFromInt(5)))
	require.GreaterOrEqual(t, time.Since(began), delay)
}

func TestSimulated_PartialFailureRate(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock(time.Now())
	p := NewSimulated(0,
		WithClock(clk),
		WithFailureRate(0.5),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)

	declined := 0
	const attempts = 1000
	for i := 0; i < attempts; i++ {
		if err := p.Authorize(context.Background(), "1", decimal.NewFromInt(1)); err != nil {
			require.ErrorIs(t, err, auctionerrors.ErrPaymentDeclined)
			declined++
		}
	}

	require.Greater(t, declined, attempts/4)
	require.Less(t, declined, attempts*3/4)
}
