package backoff

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"time"
)

// FullJitter returns a uniformly random duration in [0, d), the "Full Jitter"
// strategy. Zero and negative durations yield 0. Randomness comes from
// crypto/rand, with a math/rand/v2 fallback when the entropy source fails.
func FullJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(d)))
	if err != nil {
		return time.Duration(fallbackInt64N(int64(d)))
	}

	return time.Duration(n.Int64())
}

// fallbackInt64N picks a value in [0, n) without crypto/rand.Int. It first
// tries a PCG generator seeded from raw crypto/rand bytes (rand.Read takes a
// different path than rand.Int and can succeed when the latter fails); if
// even seeding fails it returns the midpoint n/2 so jitter never blocks.
func fallbackInt64N(n int64) int64 {
	var seed [8]byte

	if _, err := rand.Read(seed[:]); err != nil {
		return n / 2
	}

	rng := mrand.New(
		mrand.NewPCG(binary.LittleEndian.Uint64(seed[:]), 0),
	) // #nosec G404 -- only reached after crypto/rand has already failed

	return rng.Int64N(n)
}
