package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Entropy returns a generator seeded from the runtime's random source.
func Entropy() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// FillBernoulli sets each entry of buf to 1 with probability p and 0 otherwise.
// Float64 never returns 1, so p == 1 fills every entry and p == 0 none.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
