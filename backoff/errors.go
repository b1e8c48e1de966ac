package backoff

import "errors"

// ErrFactorTooSmall is returned by Validate when the growth factor is not
// strictly greater than 1.0. A factor at or below 1.0 cannot grow the delay.
var ErrFactorTooSmall = errors.New("backoff factor must be greater than 1.0")

// ErrMinNotPositive is returned by Validate when the minimum delay is zero or
// negative.
var ErrMinNotPositive = errors.New("backoff minimum delay must be greater than zero")

// ErrMaxBelowMin is returned by Validate when the maximum delay is below the
// minimum delay.
var ErrMaxBelowMin = errors.New("backoff maximum delay must not be below the minimum delay")

// ErrAdaptiveConfig is returned by NewSimple when the config is marked
// adaptive; use NewAdaptive for adaptive configs.
var ErrAdaptiveConfig = errors.New("config is marked adaptive, use NewAdaptive")

// ErrNotAdaptiveConfig is returned by NewAdaptive when the config is not
// marked adaptive; use NewSimple for plain configs.
var ErrNotAdaptiveConfig = errors.New("config is not marked adaptive, use NewSimple")
