package mask

import "encoding/binary"

// lfsrSeed is the default generator key, shared with the reference
// implementation's deterministic masking-noise source so that builds using
// the LFSR backend stay interoperable with its known-answer tests.
var lfsrSeed = [16]byte{
	0xF0, 0xE1, 0xD2, 0xC3, 0xB4, 0xA5, 0x96, 0x87,
	0x78, 0x69, 0x5A, 0x4B, 0x3C, 0x2D, 0x1E, 0x0F,
}

// LFSR is a degree-127 linear feedback shift register over the trinomial
// x^127 + x^64 + 1, stepped 64 bits at a time. The multiplicative group of
// GF(2^127) has Mersenne-prime order, so every nonzero seed yields the full
// 2^127-1 cycle. Not cryptographically secure; adequate as masking noise,
// which is all this package promises.
//
// State layout follows the reference: s[1] holds bits 126..64, s[0] holds
// bits 63..0.
type LFSR struct {
	s [2]uint64
}

// NewLFSR builds a generator from an arbitrary 16-byte seed,
// little-endian. An all-zero seed degenerates to the all-zero stream;
// callers seeding from entropy should re-draw on zeros.
func NewLFSR(seed [16]byte) *LFSR {
	return &LFSR{s: [2]uint64{
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	}}
}

// NewLFSRShare builds the generator for a given share index using the
// reference's deterministic seeding: a fixed key with the high word offset
// by a per-share constant.
func NewLFSRShare(shareIndex int) *LFSR {
	g := NewLFSR(lfsrSeed)
	g.s[1] += 0x0123456789ABCDEF * uint64(shareIndex)
	return g
}

// Uint64 steps the register 64 times and returns the fresh low word.
func (g *LFSR) Uint64() uint64 {
	x := ((g.s[1] << 1) | (g.s[0] >> 63)) ^ (g.s[1] >> 62)
	g.s[1] = (x ^ g.s[0]) & 0x7FFFFFFFFFFFFFFF
	g.s[0] = x
	return x
}
