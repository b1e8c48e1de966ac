//go:build unit

package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdaptive(t *testing.T, factor float64, min, max time.Duration) *Adaptive {
	t.Helper()

	engine, err := NewAdaptive(Config{Factor: factor, Min: min, Max: max, Adaptive: true})
	require.NoError(t, err)

	return engine
}

func TestNewAdaptive_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "invalid factor",
			cfg:     Config{Factor: 0.9, Min: time.Second, Max: time.Minute, Adaptive: true},
			wantErr: ErrFactorTooSmall,
		},
		{
			name:    "invalid min",
			cfg:     Config{Factor: 2.0, Min: -time.Second, Max: time.Minute, Adaptive: true},
			wantErr: ErrMinNotPositive,
		},
		{
			name:    "max below min",
			cfg:     Config{Factor: 2.0, Min: time.Minute, Max: time.Second, Adaptive: true},
			wantErr: ErrMaxBelowMin,
		},
		{
			name:    "non-adaptive config",
			cfg:     Config{Factor: 2.0, Min: time.Second, Max: time.Minute},
			wantErr: ErrNotAdaptiveConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine, err := NewAdaptive(tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, engine)
		})
	}
}

func TestAdaptive_FailGrowsFromMin(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, 300*time.Second)

	assert.Equal(t, 2*time.Second, engine.Fail())
	assert.Equal(t, 4*time.Second, engine.Fail())
	assert.Equal(t, 8*time.Second, engine.Fail())
}

func TestAdaptive_FailSuccessRoundTrip(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, 300*time.Second)

	// Walk strictly inside (min, max) so no clamp interferes.
	engine.Fail() // 2s
	engine.Fail() // 4s

	before := engine.Fail() // 8s
	engine.Fail()           // 16s

	assert.Equal(t, before, engine.Success(), "one Success must undo one Fail when unclamped")
}

func TestAdaptive_ThreeFailsThreeSuccesses(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, 300*time.Second)

	for range 3 {
		engine.Fail()
	}

	var last time.Duration
	for range 3 {
		last = engine.Success()
	}

	assert.Equal(t, time.Second, last, "three successes must undo three failures exactly")
}

func TestAdaptive_FailRunSaturatesAtMax(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, 8*time.Second)

	var last time.Duration
	for range 50 {
		last = engine.Fail()
		assert.LessOrEqual(t, last, 8*time.Second)
	}

	assert.Equal(t, 8*time.Second, last)
	assert.Equal(t, 8*time.Second, engine.Fail(), "saturated delay must stay at max")
}

func TestAdaptive_SuccessRunSaturatesAtMin(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, 8*time.Second)

	for range 10 {
		engine.Fail()
	}

	var last time.Duration
	for range 50 {
		last = engine.Success()
		assert.GreaterOrEqual(t, last, time.Second)
	}

	assert.Equal(t, time.Second, last)
	assert.Equal(t, time.Second, engine.Success(), "saturated delay must stay at min")
}

func TestAdaptive_SuccessBeforeAnyFail(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, time.Minute)

	// Already at the floor; Success must clamp there, never go below.
	assert.Equal(t, time.Second, engine.Success())
	assert.Equal(t, time.Second, engine.Success())
}

func TestAdaptive_MixedSignalStaysBounded(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 1.8, 10*time.Millisecond, 2*time.Second)

	// Deterministic 2-fails-1-success pattern: delay drifts upward, clamps at
	// the ceiling, and never leaves the configured range.
	for i := range 600 {
		var d time.Duration
		if i%3 == 2 {
			d = engine.Success()
		} else {
			d = engine.Fail()
		}

		assert.GreaterOrEqual(t, d, 10*time.Millisecond, "step %d below floor", i)
		assert.LessOrEqual(t, d, 2*time.Second, "step %d above ceiling", i)
	}
}

func TestAdaptive_MinEqualsMax(t *testing.T) {
	t.Parallel()

	engine := newAdaptive(t, 2.0, time.Second, time.Second)

	assert.Equal(t, time.Second, engine.Fail())
	assert.Equal(t, time.Second, engine.Success())
}
