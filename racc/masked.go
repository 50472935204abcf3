package racc

import (
	"fmt"

	"raccoon/entropy"
	"raccoon/field"
	"raccoon/mask"
	"raccoon/ringq"
	"raccoon/xof"
)

// This file is the masking layer: a "masked polynomial" is a d-long slice
// of ringq.Poly whose share sum mod q is the logical value. Shares stay
// canonical in [0, q) at every step, and all share arithmetic goes through
// the branchless AddQ/SubQ/NegM fixups. The operations work identically in
// the coefficient and NTT domains — a zero encoding is a uniform tuple
// summing to zero, and the transform is linear, so adding it share-wise
// preserves the decoded value in whichever domain the shares live.

// wipe zeroizes every polynomial of a share slice.
func wipe(v []ringq.Poly) {
	for i := range v {
		v[i].Zero()
	}
}

// zeroEncoding fills z with d shares of zero: uniform polynomials whose
// arithmetic sum is 0 mod q. Pairs are filled as (r, -r) from the mask
// generator owning the even index; blocks are then merged pairwise, each
// merge drawing one fresh polynomial per left-half share, adding it there
// and subtracting it from the mirrored share.
func zeroEncoding(z []ringq.Poly, mrg *mask.RNG) {
	d := len(z)
	if d == 1 {
		z[0].Zero()
		return
	}
	var r ringq.Poly
	for i := 0; i < d; i += 2 {
		mrg.Poly(i, &z[i])
		z[i+1].NegM(&z[i], field.Q64)
	}
	for dd := 2; dd < d; dd <<= 1 {
		for i := 0; i < d; i += 2 * dd {
			for j := i; j < i+dd; j++ {
				mrg.Poly(j, &r)
				z[j].AddQ(&z[j], &r)
				z[j+dd].SubQ(&z[j+dd], &r)
			}
		}
	}
	r.Zero()
}

// refresh rerandomizes the shares of x without changing its decoded
// value. With a single share there is nothing to rerandomize.
func refresh(x []ringq.Poly, mrg *mask.RNG) {
	if len(x) == 1 {
		return
	}
	z := make([]ringq.Poly, len(x))
	zeroEncoding(z, mrg)
	for i := range x {
		x[i].AddQ(&x[i], &z[i])
	}
	wipe(z)
}

// addRepNoise adds rep rounds of width-u uniform noise to the masked
// vector element v (vector index iV), drawing a fresh kappa-byte seed for
// every (round, share) pair and refreshing the sharing after each round.
// The masking argument rests on the combination of repetitions and the
// interleaved refreshes, not on any single draw.
func addRepNoise(v []ringq.Poly, iV int, u uint, p *Params, es entropy.Source, mrg *mask.RNG) error {
	seed := make([]byte, xof.HeaderSize+p.Sec)
	var r ringq.Poly
	defer r.Zero()

	for iRep := 0; iRep < p.Rep; iRep++ {
		for j := range v {
			if err := es.Fill(seed[xof.HeaderSize:]); err != nil {
				return fmt.Errorf("%w: %v", ErrEntropy, err)
			}
			hdr := xof.Header(xof.TagRepNoise, byte(iRep), byte(iV), byte(j))
			copy(seed[:xof.HeaderSize], hdr[:])
			xof.SampleU(&r, u, seed)
			v[j].AddQ(&v[j], &r)
		}
		refresh(v, mrg)
	}
	for i := range seed {
		seed[i] = 0
	}
	return nil
}

// decode collapses the shares of m into r, the logical value mod q.
func decode(r *ringq.Poly, m []ringq.Poly) {
	*r = m[0]
	for i := 1; i < len(m); i++ {
		r.AddQ(r, &m[i])
	}
}
