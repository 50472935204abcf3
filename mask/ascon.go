package mask

import (
	"encoding/binary"
	"math/bits"
)

// Ascon-80pq test-vector key and nonce, as used by the reference's
// deterministic masking-noise source.
var (
	asconKey = [20]byte{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	}
	asconIV = [16]byte{
		0, 1, 2, 3, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 13, 14, 15,
	}
)

// Ascon is a masking noise source built from the Ascon v1.2 permutation:
// the keystream is Ascon-80pq AEAD ciphertext with an all-zero plaintext,
// six permutation rounds per output word. Statistically far stronger than
// the LFSR; the reference carries it to demonstrate the cost of a "good"
// generator, and hardware deployments of the same construction reseed it
// continuously from a physical source.
type Ascon struct {
	s [5]uint64
}

// andn is the and-not primitive of the Ascon substitution layer, x & ^y.
func andn(x, y uint64) uint64 { return x &^ y }

// ror is a right rotation.
func ror(x uint64, n int) uint64 { return bits.RotateLeft64(x, -n) }

// asconP applies n rounds of the Ascon v1.2 permutation to s.
func asconP(s *[5]uint64, n int) {
	c := uint64((3+n)<<4 | (12 - n))
	for i := 0; i < n; i++ {
		s[2] ^= c
		c -= 0xF

		// substitution layer
		s[0] ^= s[4]
		s[4] ^= s[3]
		s[2] ^= s[1]
		t := andn(s[0], s[4])
		s[0] ^= andn(s[2], s[1])
		s[2] ^= andn(s[4], s[3])
		s[4] ^= andn(s[1], s[0])
		s[1] ^= andn(s[3], s[2])
		s[3] ^= t
		s[1] ^= s[0]
		s[3] ^= s[2]
		s[0] ^= s[4]

		// linear diffusion layer
		s[0] ^= ror(s[0], 19) ^ ror(s[0], 28)
		s[1] ^= ror(s[1], 39) ^ ror(s[1], 61)
		s[2] ^= ror(s[2], 1) ^ ror(s[2], 6)
		s[3] ^= ror(s[3], 10) ^ ror(s[3], 17)
		s[4] ^= ror(s[4], 7) ^ ror(s[4], 41)
		s[2] = ^s[2]
	}
}

// NewAsconShare initializes the Ascon-80pq state for a share index: the
// standard IV/key/nonce loading, the nonce word offset by the share index,
// twelve initialization rounds, then the key feed-forward and the AEAD
// domain-separation bit.
func NewAsconShare(shareIndex int) *Ascon {
	g := &Ascon{}
	s := &g.s
	s[0] = 0xA0400C0600000000 | uint64(binary.BigEndian.Uint32(asconKey[:4]))
	s[1] = binary.BigEndian.Uint64(asconKey[4:12])
	s[2] = binary.BigEndian.Uint64(asconKey[12:20])
	s[3] = binary.BigEndian.Uint64(asconIV[:8])
	s[4] = binary.BigEndian.Uint64(asconIV[8:16])

	s[3] += uint64(shareIndex)

	asconP(s, 12)
	s[2] ^= uint64(binary.BigEndian.Uint32(asconKey[:4]))
	s[3] ^= binary.BigEndian.Uint64(asconKey[4:12])
	s[4] ^= binary.BigEndian.Uint64(asconKey[12:20])
	s[4] ^= 1
	return g
}

// Uint64 encrypts one zero plaintext word and returns the ciphertext.
func (g *Ascon) Uint64() uint64 {
	r := g.s[0]
	asconP(&g.s, 6)
	return r
}
