package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"auction-front/internal/clock"
)

func TestReal_Now(t *testing.T) {
	clk := clock.Real{}
	before := time.Now()
	got := clk.Now()
	after := time.Now()

	require.False(t, got.Before(before), "Real.Now() before lower bound")
	require.False(t, got.After(after), "Real.Now() after upper bound")
}

func TestMock_Now(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMock(fixed)

	require.True(t, clk.Now().Equal(fixed))
	// Call again to ensure determinism.
	require.True(t, clk.Now().Equal(fixed))
}

func TestMock_AfterAdvances(t *testing.T) {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMock(fixed)

	select {
	case fired := <-clk.After(time.Second):
		require.True(t, fired.Equal(fixed.Add(time.Second)))
	case <-time.After(time.Second):
		t.Fatal("mock After did not fire immediately")
	}
	require.True(t, clk.Now().Equal(fixed.Add(time.Second)))
}

func TestMock_SetAndAdvance(t *testing.T) {
	clk := clock.NewMock(time.Time{})
	target := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	clk.Set(target)
	clk.Advance(90 * time.Minute)

	require.True(t, clk.Now().Equal(target.Add(90*time.Minute)))
}
