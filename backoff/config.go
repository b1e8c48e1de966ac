package backoff

import (
	"fmt"
	"time"
)

// Default configuration values used by NewBuilder and DefaultConfig.
const (
	DefaultFactor = 2.0
	DefaultMin    = 100 * time.Millisecond
	DefaultMax    = 30 * time.Second
)

// Config holds a validated backoff policy. Engines copy its values at
// construction, so a Config can be reused to build any number of engines and
// is never mutated by them.
type Config struct {
	// Factor is the multiplicative growth rate applied per step. Must be
	// strictly greater than 1.0.
	Factor float64
	// Min is the floor delay and the initial delay of every engine. Must be
	// positive.
	Min time.Duration
	// Max is the ceiling delay. Must be at least Min.
	Max time.Duration
	// Adaptive selects the engine variant: false for Simple (Wait/Reset),
	// true for Adaptive (Success/Fail).
	Adaptive bool
	// Jitter randomizes returned delays into [0, delay). Internal state stays
	// deterministic; only the returned value is perturbed.
	Jitter bool
}

// Validate checks all fields together and returns the first violated
// constraint. Invalid values are reported, never clamped.
func (c Config) Validate() error {
	if c.Factor <= 1.0 {
		return fmt.Errorf("%w: got %v", ErrFactorTooSmall, c.Factor)
	}

	if c.Min <= 0 {
		return fmt.Errorf("%w: got %v", ErrMinNotPositive, c.Min)
	}

	if c.Max < c.Min {
		return fmt.Errorf("%w: max %v, min %v", ErrMaxBelowMin, c.Max, c.Min)
	}

	return nil
}

// DefaultConfig provides balanced settings for most retry loops.
func DefaultConfig() Config {
	return Config{
		Factor: DefaultFactor,
		Min:    DefaultMin,
		Max:    DefaultMax,
	}
}

// AggressiveConfig backs off quickly from a short floor, for callers that
// must shed load fast.
func AggressiveConfig() Config {
	return Config{
		Factor: 3.0,
		Min:    50 * time.Millisecond,
		Max:    10 * time.Second,
	}
}

// ConservativeConfig grows slowly toward a high ceiling, for operations that
// should tolerate long outages without hammering the dependency.
func ConservativeConfig() Config {
	return Config{
		Factor: 1.5,
		Min:    500 * time.Millisecond,
		Max:    5 * time.Minute,
	}
}

// Builder collects backoff policy parameters. Setters record values without
// validating them; Build validates everything together, so a half-configured
// builder is never rejected early. Use one fresh builder per configuration.
type Builder struct {
	cfg Config
}

// NewBuilder returns a builder seeded with the default configuration.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Factor records the growth multiplier applied per step.
func (b *Builder) Factor(f float64) *Builder {
	b.cfg.Factor = f

	return b
}

// Min records the floor delay, which is also the initial delay.
func (b *Builder) Min(d time.Duration) *Builder {
	b.cfg.Min = d

	return b
}

// Max records the ceiling delay.
func (b *Builder) Max(d time.Duration) *Builder {
	b.cfg.Max = d

	return b
}

// Adaptive marks the configuration for the adaptive engine variant.
func (b *Builder) Adaptive() *Builder {
	b.cfg.Adaptive = true

	return b
}

// Jitter enables full jitter on returned delays.
func (b *Builder) Jitter() *Builder {
	b.cfg.Jitter = true

	return b
}

// Build validates the recorded parameters atomically and returns the
// resulting Config. On failure it returns the zero Config and the violated
// constraint; no partially valid configuration is ever produced.
func (b *Builder) Build() (Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return Config{}, err
	}

	return b.cfg, nil
}
