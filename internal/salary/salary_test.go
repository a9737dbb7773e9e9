package salary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/fishcast/internal/salary"
)

var t0 = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func TestPerMinute(t *testing.T) {
	assert.InDelta(t, 1.0, salary.PerMinute(43200), 1e-12)
}

func TestStart_RejectsNonPositive(t *testing.T) {
	for _, v := range []float64{0, -1} {
		_, err := salary.Start(v, t0)
		assert.ErrorIs(t, err, salary.ErrInvalidSalary)
	}
}

func TestTick_AccruesByElapsedMinutes(t *testing.T) {
	s, err := salary.Start(43200, t0)
	require.NoError(t, err)

	next, celebrate := s.Tick(t0.Add(90 * time.Second))
	assert.InDelta(t, 1.5, next.Earned, 1e-9)
	assert.False(t, celebrate)
	assert.Equal(t, t0.Add(90*time.Second), next.Now)

	// The original session is untouched.
	assert.Zero(t, s.Earned)
}

func TestTick_CelebratesEachHundred(t *testing.T) {
	s, err := salary.Start(43200, t0)
	require.NoError(t, err)

	s, celebrate := s.Tick(t0.Add(99 * time.Minute))
	assert.False(t, celebrate)
	assert.Equal(t, 0, s.Celebrations)

	s, celebrate = s.Tick(t0.Add(100 * time.Minute))
	assert.True(t, celebrate)
	assert.Equal(t, 1, s.Celebrations)

	s, celebrate = s.Tick(t0.Add(150 * time.Minute))
	assert.False(t, celebrate)

	s, celebrate = s.Tick(t0.Add(350 * time.Minute))
	assert.True(t, celebrate)
	assert.Equal(t, 3, s.Celebrations)
}

func TestTick_ClockBeforeStart(t *testing.T) {
	s, err := salary.Start(10000, t0)
	require.NoError(t, err)

	next, celebrate := s.Tick(t0.Add(-time.Minute))
	assert.Zero(t, next.Earned)
	assert.False(t, celebrate)
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	s, err := salary.Start(43200, time.Now())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := 0
	last := salary.Run(ctx, s, 5*time.Millisecond, func(_ salary.Session, _ bool) {
		ticks++
		if ticks == 3 {
			cancel()
		}
	})

	assert.GreaterOrEqual(t, ticks, 3)
	assert.Greater(t, last.Earned, 0.0)
}

func TestRun_NonPositiveIntervalUsesDefault(t *testing.T) {
	s, err := salary.Start(43200, time.Now())
	require.NoError(t, err)

	for _, interval := range []time.Duration{0, -time.Second} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var last salary.Session
		assert.NotPanics(t, func() {
			last = salary.Run(ctx, s, interval, func(_ salary.Session, _ bool) {})
		}, interval.String())
		assert.Equal(t, s, last)
	}
}
