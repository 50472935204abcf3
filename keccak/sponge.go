package keccak

import "encoding/binary"

// Phase tags which direction bytes are flowing through a Sponge.
type Phase int

const (
	Absorbing Phase = iota
	Squeezing
)

// Recognized rates, in bytes, for the standard SHA-3/SHAKE family.
const (
	RateShake128 = 168
	RateShake256 = 136
	RateSHA3_256 = 136
	RateSHA3_224 = 144
	RateSHA3_384 = 104
	RateSHA3_512 = 72
)

// Domain-separator pad bytes.
const (
	PadSHA3  byte = 0x06
	PadSHAKE byte = 0x1f
)

const stateBytes = 200

// Sponge is an incremental Keccak-f[1600] sponge. Absorb any number of
// bytes, call Pad once with the desired domain-separator byte, then
// Squeeze any number of output bytes. Absorbing after Pad is not supported
// and will panic — crossing from squeeze back to absorb requires a Reset.
type Sponge struct {
	a      [25]uint64
	inBuf  [stateBytes]byte // pending, not-yet-permuted input bytes
	outBuf [stateBytes]byte // bytes squeezed from the state since the last permute
	rate   int
	pos    int
	phase  Phase
}

// New creates a Sponge with the given rate (bytes). rate must satisfy
// 0 < rate < 200.
func New(rate int) *Sponge {
	if rate <= 0 || rate >= stateBytes {
		panic("keccak: invalid rate")
	}
	return &Sponge{rate: rate, phase: Absorbing}
}

// NewShake128 returns a Sponge configured for SHAKE128 (caller still calls
// Pad(PadSHAKE) before squeezing).
func NewShake128() *Sponge { return New(RateShake128) }

// NewShake256 returns a Sponge configured for SHAKE256.
func NewShake256() *Sponge { return New(RateShake256) }

// Reset clears the sponge state and returns it to the absorbing phase.
func (s *Sponge) Reset() {
	for i := range s.a {
		s.a[i] = 0
	}
	for i := range s.inBuf {
		s.inBuf[i] = 0
	}
	s.pos = 0
	s.phase = Absorbing
}

// Rate returns the configured byte rate.
func (s *Sponge) Rate() int { return s.rate }

// absorbLanes xors a full rate window of input bytes into the lane state,
// little-endian. The rate is always a multiple of 8.
func absorbLanes(a []uint64, src []byte) {
	for i := 0; i+8 <= len(src); i += 8 {
		a[i/8] ^= binary.LittleEndian.Uint64(src[i:])
	}
}

// Absorb xors p into the sponge state, permuting every time a full rate
// window of input has accumulated.
func (s *Sponge) Absorb(p []byte) {
	if s.phase != Absorbing {
		panic("keccak: absorb after squeeze")
	}
	for len(p) > 0 {
		space := s.rate - s.pos
		n := space
		if n > len(p) {
			n = len(p)
		}
		copy(s.inBuf[s.pos:s.pos+n], p[:n])
		s.pos += n
		p = p[n:]
		if s.pos == s.rate {
			absorbLanes(s.a[:], s.inBuf[:s.rate])
			permute(&s.a)
			for i := 0; i < s.rate; i++ {
				s.inBuf[i] = 0
			}
			s.pos = 0
		}
	}
}

// Pad XORs the domain-separator byte at the current input position,
// XORs the multi-rate end-marker at the last byte of the rate window, and
// permutes once more, transitioning the sponge into the squeezing phase.
func (s *Sponge) Pad(dsbyte byte) {
	if s.phase != Absorbing {
		panic("keccak: double pad")
	}
	s.inBuf[s.pos] ^= dsbyte
	s.inBuf[s.rate-1] ^= 0x80
	absorbLanes(s.a[:], s.inBuf[:s.rate])
	permute(&s.a)
	for i := range s.inBuf {
		s.inBuf[i] = 0
	}
	s.pos = 0
	s.phase = Squeezing
	s.fillOutBuf()
}

func (s *Sponge) fillOutBuf() {
	for i := 0; i < s.rate; i += 8 {
		binary.LittleEndian.PutUint64(s.outBuf[i:], s.a[i/8])
	}
}

// Squeeze appends n freshly-squeezed bytes to dst and returns the result.
// It pads implicitly if still absorbing.
func (s *Sponge) Squeeze(dst []byte, n int) []byte {
	if s.phase == Absorbing {
		s.Pad(PadSHAKE)
	}
	out := make([]byte, n)
	o := 0
	for o < n {
		avail := s.rate - s.pos
		take := avail
		if take > n-o {
			take = n - o
		}
		copy(out[o:o+take], s.outBuf[s.pos:s.pos+take])
		s.pos += take
		o += take
		if s.pos == s.rate {
			permute(&s.a)
			s.fillOutBuf()
			s.pos = 0
		}
	}
	return append(dst, out...)
}

// Clone returns an independent copy of the sponge's current state.
func (s *Sponge) Clone() *Sponge {
	c := *s
	return &c
}
