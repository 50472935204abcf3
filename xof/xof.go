// Package xof implements Raccoon's sampling and hashing layer: every
// pseudorandom object in the scheme — the public matrix, noise
// polynomials, mask-key share expansions, the pk-bound message digest and
// the challenge — derives from one absorb of a fully domain-separated
// header into SHAKE256, then per-coefficient squeezing.
package xof

import (
	"encoding/binary"

	"raccoon/field"
	"raccoon/keccak"
	"raccoon/ringq"
)

// Domain-separation tags. The exact bytes are part of the wire format and
// must match across interoperable implementations.
const (
	TagExpandA  byte = 'A' // public matrix expansion
	TagMaskKey  byte = 'K' // secret-key mask-share expansion
	TagRepNoise byte = 'u' // AddRepNoise sampling
	TagChalHash byte = 'h' // commitment hashing
	TagChalPoly byte = 'c' // challenge polynomial expansion
)

// HeaderSize is the fixed length of a domain-separation record.
const HeaderSize = 8

// Header assembles the 8-byte record Ser8(tag, b1, b2, b3, 0, 0, 0, 0)
// that prefixes every sampler seed.
func Header(tag, b1, b2, b3 byte) [HeaderSize]byte {
	return [HeaderSize]byte{tag, b1, b2, b3}
}

const (
	qBits  = 49
	qBytes = (qBits + 7) / 8
	qMask  = (uint64(1) << qBits) - 1
)

// SampleQ expands seed (which must already carry its domain-separation
// header) into a uniform polynomial mod q. Each coefficient squeezes
// ceil(49/8) = 7 bytes, masks to 49 bits, and rejects values >= q
// independently of every other coefficient.
func SampleQ(r *ringq.Poly, seed []byte) {
	s := keccak.NewShake256()
	s.Absorb(seed)
	s.Pad(keccak.PadSHAKE)

	var buf [8]byte
	for i := range r {
		for {
			s.Squeeze(buf[:0], qBytes)
			x := binary.LittleEndian.Uint64(buf[:]) & qMask
			if x < uint64(field.Q64) {
				r[i] = int64(x)
				break
			}
		}
	}
}

// SampleU expands seed into n coefficients uniform over the two's
// complement range [-2^(bits-1), 2^(bits-1)), mapped into [0, q) by a
// conditional add of q. No rejection is needed: the masked value is
// uniform by construction.
func SampleU(r *ringq.Poly, bits uint, seed []byte) {
	blen := (int(bits) + 7) / 8
	mask := (int64(1) << bits) - 1
	mid := int64(1) << (bits - 1)

	s := keccak.NewShake256()
	s.Absorb(seed)
	s.Pad(keccak.PadSHAKE)

	var buf [8]byte
	for i := range r {
		s.Squeeze(buf[:0], blen)
		x := int64(binary.LittleEndian.Uint64(buf[:])) & mask
		x ^= mid // flip the top bit: 0 = non-negative, 1 = negative
		r[i] = field.CAdd64(x-mid, field.Q64)
	}
}

// ChalMu computes the pk-bound message digest mu = SHAKE256(tr || msg),
// filling all of mu.
func ChalMu(mu, tr, msg []byte) {
	s := keccak.NewShake256()
	s.Absorb(tr)
	s.Absorb(msg)
	s.Pad(keccak.PadSHAKE)
	s.Squeeze(mu[:0], len(mu))
}

// ChalHash hashes the rounded commitment vector w with mu into the
// challenge hash ch. Each w coefficient lies in [0, q_w) and is absorbed
// as exactly wBytes little-endian bytes, after the header ('h', k) and mu.
func ChalHash(ch, mu []byte, w []ringq.Poly, wBytes int) {
	s := keccak.NewShake256()
	hdr := Header(TagChalHash, byte(len(w)), 0, 0)
	s.Absorb(hdr[:])
	s.Absorb(mu)

	var buf [8]byte
	for i := range w {
		for _, c := range w[i] {
			binary.LittleEndian.PutUint64(buf[:], uint64(c))
			s.Absorb(buf[:wBytes])
		}
	}
	s.Pad(keccak.PadSHAKE)
	s.Squeeze(ch[:0], len(ch))
}

// ChalPoly expands a challenge hash into the sparse ternary challenge
// polynomial: exactly omega coefficients set to +1 or -1, positions and
// signs drawn two bytes at a time from SHAKE256(('c', omega) || ch).
// Occupied positions are skipped, so the Hamming weight is exact.
func ChalPoly(r *ringq.Poly, ch []byte, omega int) {
	s := keccak.NewShake256()
	hdr := Header(TagChalPoly, byte(omega), 0, 0)
	s.Absorb(hdr[:])
	s.Absorb(ch)
	s.Pad(keccak.PadSHAKE)

	r.Zero()
	var buf [2]byte
	for j := 0; j < omega; {
		s.Squeeze(buf[:0], 2)
		v := binary.LittleEndian.Uint16(buf[:])
		sign := int64(v & 1)
		pos := (int(v) >> 1) & (ringq.N - 1)
		if r[pos] == 0 {
			r[pos] = 2*sign - 1
			j++
		}
	}
}
