package backoff

import "time"

// Adaptive is a backoff whose delay is driven by reported outcomes: Fail
// grows it toward the ceiling and Success shrinks it toward the floor. Under
// a mixed outcome stream the delay oscillates within the configured bounds
// instead of ratcheting upward, because each Fail step is exactly undone by a
// Success step whenever neither bound clamps the value.
//
// There is no Reset; the outcome signal itself drives the delay back down.
// Like Simple, an Adaptive value assumes a single owner.
type Adaptive struct {
	factor  float64
	min     time.Duration
	max     time.Duration
	jitter  bool
	current time.Duration
}

// NewAdaptive builds an adaptive backoff engine from cfg. It fails with a
// validation error when cfg is invalid, or with ErrNotAdaptiveConfig when cfg
// is not marked adaptive.
func NewAdaptive(cfg Config) (*Adaptive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.Adaptive {
		return nil, ErrNotAdaptiveConfig
	}

	return &Adaptive{
		factor:  cfg.Factor,
		min:     cfg.Min,
		max:     cfg.Max,
		jitter:  cfg.Jitter,
		current: cfg.Min,
	}, nil
}

// Fail records a failed attempt: the delay is multiplied by the configured
// factor, saturating at the ceiling, and the new delay is returned.
func (a *Adaptive) Fail() time.Duration {
	a.current = grow(a.current, a.factor, a.max)

	return a.delay()
}

// Success records a successful attempt: the delay is divided by the
// configured factor, saturating at the floor, and the new delay is returned.
func (a *Adaptive) Success() time.Duration {
	a.current = shrink(a.current, a.factor, a.min)

	return a.delay()
}

func (a *Adaptive) delay() time.Duration {
	if a.jitter {
		return FullJitter(a.current)
	}

	return a.current
}

// shrink divides d by factor, saturating at min.
func shrink(d time.Duration, factor float64, min time.Duration) time.Duration {
	next := float64(d) / factor
	if next <= float64(min) {
		return min
	}

	return time.Duration(next)
}
