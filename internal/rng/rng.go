// Package rng provides the pseudo-random operand sources used to fill
// benchmark buffers. Sources are plain values owned by the caller; there is
// no package-level generator.
package rng

import (
	"math/rand/v2"

	"github.com/varex83/acs-lab-1/internal/clock"
)

// Distinct PCG stream selectors so that two sources seeded from the same
// clock reading still produce unrelated sequences.
const (
	narrowStream = 0x9e3779b97f4a7c15
	wideStream   = 0xbf58476d1ce4e5b9
)

// Source is a seeded pseudo-random generator. It is not safe for
// concurrent use.
type Source struct {
	r *rand.Rand
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *Source {
	return newSource(seed, narrowStream)
}

// NewNarrow returns a source for the 32-bit and 8-bit buffers, seeded once
// from the monotonic clock.
func NewNarrow() *Source {
	return newSource(clock.Ticks(), narrowStream)
}

// NewWide returns a source for the 64-bit buffers, seeded once from the
// monotonic clock.
func NewWide() *Source {
	return newSource(clock.Ticks(), wideStream)
}

func newSource(seed, stream uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, stream))}
}

// Uint32 returns a value in [0, 2^32).
func (s *Source) Uint32() uint32 {
	return s.r.Uint32()
}

// Uint64 returns a value in [0, 2^64).
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}
