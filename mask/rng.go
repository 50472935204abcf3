// Package mask implements the d-1 independent pseudorandom generators
// behind a masked Raccoon secret: one generator for each share index
// 0..d-2, each consulted only from the share it owns. The scheme's security does
// not depend on the specific generator — only on mask independence — so two
// interchangeable choices are offered, matching the reference's
// compile-time MASK_RANDOM_ASCON switch: an Ascon-p permutation stream and
// an LFSR-127.
//
// In a hardware deployment each generator would be continuously reseeded
// from a physical entropy source; this portable software rendition seeds
// deterministically at construction and streams thereafter, exactly like
// the reference's "dummy" generators.
package mask

import (
	"raccoon/field"
	"raccoon/ringq"
)

// Generator produces a 64-bit pseudorandom word on demand. It is
// intentionally narrow — Raccoon only ever needs rejection-sampled
// uniform words out of a mask generator, never arbitrary-length absorb.
type Generator interface {
	Uint64() uint64
}

// qmsk masks a 64-bit word down to the bit width of field.Q64 (49 bits).
const qBits = 49
const qmsk = (uint64(1) << qBits) - 1

// RandPoly fills r with uniform coefficients in [0, field.Q64) drawn from
// g by rejection sampling, the shared tail end of both mask_random_poly
// variants in the reference (only the underlying word source differs).
func RandPoly(g Generator, r *ringq.Poly) {
	for i := range r {
		for {
			z := g.Uint64() & qmsk
			if z < uint64(field.Q64) {
				r[i] = int64(z)
				break
			}
		}
	}
}

// RNG bundles the d-1 per-share generators a masked value of share count d
// needs. Generator i is consulted only for zero-encoding position i; the
// last share, d-1, only ever receives differences of the others and owns
// no generator.
type RNG struct {
	gens []Generator
}

// NewRNG builds an RNG with d-1 generators, one per owned share index,
// using newGen to construct each one independently.
func NewRNG(d int, newGen func(shareIndex int) Generator) *RNG {
	if d < 1 {
		panic("mask: d must be >= 1")
	}
	m := &RNG{gens: make([]Generator, d-1)}
	for i := range m.gens {
		m.gens[i] = newGen(i)
	}
	return m
}

// NewLFSRRNG builds an RNG over LFSR-127 generators with the reference's
// per-share deterministic seeding.
func NewLFSRRNG(d int) *RNG {
	return NewRNG(d, func(i int) Generator { return NewLFSRShare(i) })
}

// NewAsconRNG builds an RNG over Ascon-p generators with the reference's
// per-share deterministic seeding.
func NewAsconRNG(d int) *RNG {
	return NewRNG(d, func(i int) Generator { return NewAsconShare(i) })
}

// Shares reports d-1, the number of owned generators.
func (m *RNG) Shares() int { return len(m.gens) }

// Poly fills r with a uniform Z_q polynomial from the generator owning
// shareIndex, which must be in [0, d-2].
func (m *RNG) Poly(shareIndex int, r *ringq.Poly) {
	RandPoly(m.gens[shareIndex], r)
}
