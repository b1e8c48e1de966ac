package backoff

import "time"

// Simple is an exponential backoff whose delay grows on every Wait call and
// returns to the floor only on Reset. Growth is a function of call count
// alone; success and failure of the guarded operation play no part.
//
// A Simple value is a plain in-memory state machine: no goroutines, no
// timers, no I/O. It assumes a single owner; guard shared instances with a
// mutex or give each retry stream its own engine.
type Simple struct {
	factor  float64
	min     time.Duration
	max     time.Duration
	jitter  bool
	current time.Duration
}

// NewSimple builds a simple backoff engine from cfg. It fails with a
// validation error when cfg is invalid, or with ErrAdaptiveConfig when cfg is
// marked adaptive. An engine is never constructed from a bad configuration.
func NewSimple(cfg Config) (*Simple, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Adaptive {
		return nil, ErrAdaptiveConfig
	}

	return &Simple{
		factor:  cfg.Factor,
		min:     cfg.Min,
		max:     cfg.Max,
		jitter:  cfg.Jitter,
		current: cfg.Min,
	}, nil
}

// Wait returns the delay to apply before the next attempt, then advances the
// internal delay by the configured factor, saturating at the ceiling. The
// first call after construction or Reset returns the floor; growth shows
// from the second call onward.
func (s *Simple) Wait() time.Duration {
	d := s.current
	s.current = grow(s.current, s.factor, s.max)

	if s.jitter {
		return FullJitter(d)
	}

	return d
}

// Reset returns the delay to the floor, discarding accumulated growth.
// Callers typically invoke it after an observed success.
func (s *Simple) Reset() {
	s.current = s.min
}

// grow multiplies d by factor, saturating at max. The comparison happens in
// float space so the multiplication cannot overflow int64 before clamping.
func grow(d time.Duration, factor float64, max time.Duration) time.Duration {
	next := float64(d) * factor
	if next >= float64(max) {
		return max
	}

	return time.Duration(next)
}
