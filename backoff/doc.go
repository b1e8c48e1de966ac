// Package backoff computes retry delays with exponential growth bounded by a
// configured ceiling.
//
// Two engine variants share one validated configuration: Simple grows the
// delay on every Wait call until Reset, and Adaptive grows it on Fail and
// shrinks it on Success so the delay converges toward the load the caller can
// sustain. The package only computes durations; the retry loop, the actual
// waiting, and cancellation belong to the caller.
package backoff
