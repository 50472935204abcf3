package serial

import (
	"fmt"

	"raccoon/field"
	"raccoon/racc"
	"raccoon/ringq"
)

// EncodeSig serializes sig into a fixed p.SigSize()-byte buffer:
// the challenge hash, then the bit-streamed hint and response.
//
// Hint coefficients (centered): zero is a single 0 bit; a nonzero value x
// is |x| 1-bits, a 0 stop bit, and the sign bit. Response coefficients:
// the low 40 bits of the centered absolute value LSB-first, a unary run of
// the high part, the stop bit, and — only when the value is nonzero — the
// sign bit. The trailing fraction and the rest of the buffer are
// zero-padded.
//
// ok is false when the encoding overflows the fixed budget; the caller
// re-runs the sign loop with fresh randomness.
func EncodeSig(p *racc.Params, sig *racc.Signature) (b []byte, ok bool) {
	if len(sig.Ch) != p.CRH || len(sig.H) != p.K || len(sig.Z) != p.Ell {
		return nil, false
	}
	b = make([]byte, p.SigSize())
	copy(b, sig.Ch)
	w := &bitWriter{b: b, pos: p.CRH}

	for i := range sig.H {
		for _, x := range sig.H[i] {
			x = center(x)
			if x == 0 {
				if !w.put(0, 1) {
					return nil, false
				}
				continue
			}
			var s uint64
			if x < 0 {
				x = -x
				s = 1
			}
			// |x| ones, stop bit, sign
			if !w.putOnes(int(x)) || !w.put(s<<1, 2) {
				return nil, false
			}
		}
	}

	for i := range sig.Z {
		for _, x := range sig.Z[i] {
			x = center(x)
			var s uint64
			if x < 0 {
				x = -x
				s = 1
			}
			lo := uint64(x) & ((uint64(1) << racc.ZLowBits) - 1)
			run := int(x >> racc.ZLowBits)
			if !w.put(lo, racc.ZLowBits) || !w.putOnes(run) {
				return nil, false
			}
			if x == 0 {
				// stop bit only, no sign
				if !w.put(0, 1) {
					return nil, false
				}
			} else if !w.put(s<<1, 2) {
				return nil, false
			}
		}
	}

	if !w.flush() {
		return nil, false
	}
	return b, true
}

// center folds an arbitrary mod-q representative to (-q/2, q/2].
func center(x int64) int64 {
	x = field.CMod(x, field.Q64)
	if x > field.Q64/2 {
		x -= field.Q64
	}
	return x
}

// DecodeSig parses a fixed-length signature buffer. Run lengths are capped
// against the norm bounds as they stream in, so a malformed buffer is
// rejected before it can wind the decoder through the whole budget;
// nonzero bits in the padding region are also a reject.
func DecodeSig(p *racc.Params, b []byte) (*racc.Signature, error) {
	if len(b) != p.SigSize() {
		return nil, fmt.Errorf("%w: signature length %d", racc.ErrMalformedInput, len(b))
	}
	sig := racc.NewSignature(p)
	copy(sig.Ch, b[:p.CRH])
	r := newBitReader(b[p.CRH:])

	hCap := p.BInfH()
	for i := 0; i < p.K; i++ {
		for j := 0; j < ringq.N; j++ {
			var x int64
			for r.bit() == 1 {
				x++
				if x > hCap {
					return nil, fmt.Errorf("%w: hint run exceeds bound", racc.ErrMalformedInput)
				}
			}
			if x != 0 && r.bit() == 1 {
				x = -x
			}
			sig.H[i][j] = x
		}
	}

	for i := 0; i < p.Ell; i++ {
		for j := 0; j < ringq.N; j++ {
			var x int64
			for n := 0; n < racc.ZLowBits; n++ {
				x |= int64(r.bit()) << uint(n)
			}
			for r.bit() == 1 {
				x += int64(1) << racc.ZLowBits
				if x > p.BInf {
					return nil, fmt.Errorf("%w: response run exceeds bound", racc.ErrMalformedInput)
				}
			}
			if x > p.BInf {
				return nil, fmt.Errorf("%w: response coefficient exceeds bound", racc.ErrMalformedInput)
			}
			if x != 0 && r.bit() == 1 {
				x = field.Q64 - x
			}
			sig.Z[i][j] = x
		}
	}

	if r.fail {
		return nil, fmt.Errorf("%w: signature bitstream truncated", racc.ErrMalformedInput)
	}
	if !r.paddingClean() {
		return nil, fmt.Errorf("%w: nonzero signature padding", racc.ErrMalformedInput)
	}
	return sig, nil
}
