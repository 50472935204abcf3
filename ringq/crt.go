package ringq

import (
	"fmt"
	"sync"

	"github.com/tuneinsight/lattigo/v4/ring"

	"raccoon/field"
)

// crtRings holds the two single-modulus Lattigo rings backing the CRT
// arithmetic path, one per RNS limb (q1, q2), built lazily and shared by
// every MulCRT call — mirroring the teacher's Params.BuildRings, but
// fixed to Raccoon's two-limb split instead of an arbitrary RNS chain.
var (
	crtRings     [2]*ring.Ring
	crtRingsOnce sync.Once
	crtRingsErr  error
)

func buildCRTRings() {
	r1, err := ring.NewRing(N, []uint64{uint64(field.Q1)})
	if err != nil {
		crtRingsErr = fmt.Errorf("ringq: build q1 ring: %w", err)
		return
	}
	r2, err := ring.NewRing(N, []uint64{uint64(field.Q2)})
	if err != nil {
		crtRingsErr = fmt.Errorf("ringq: build q2 ring: %w", err)
		return
	}
	crtRings[0], crtRings[1] = r1, r2
}

// CRTLimbs holds a polynomial split into its two CRT residues, each
// represented as a Lattigo ring.Poly so the heavy lifting (NTT, pointwise
// Montgomery multiply) runs through lattigo/v4/ring instead of a
// hand-rolled transform.
type CRTLimbs struct {
	L1, L2 *ring.Poly
}

// ToCRT splits p (canonical, possibly negative coefficients) into its two
// RNS limbs mod q1 and mod q2.
func (p *Poly) ToCRT() (CRTLimbs, error) {
	crtRingsOnce.Do(buildCRTRings)
	if crtRingsErr != nil {
		return CRTLimbs{}, crtRingsErr
	}
	l1 := crtRings[0].NewPoly()
	l2 := crtRings[1].NewPoly()
	for i, c := range p {
		v1, v2 := field.SplitCRT(c)
		l1.Coeffs[0][i] = uint64(v1)
		l2.Coeffs[0][i] = uint64(v2)
	}
	return CRTLimbs{L1: l1, L2: l2}, nil
}

// FromCRT reconstructs a Poly from its two RNS limbs via the Montgomery
// CRT join (field.JoinCRT), centering the result mod Q64.
func FromCRT(l CRTLimbs) Poly {
	var p Poly
	for i := 0; i < N; i++ {
		v1 := int32(l.L1.Coeffs[0][i])
		v2 := int32(l.L2.Coeffs[0][i])
		p[i] = field.JoinCRT(v1, v2)
	}
	p.Center(field.Q64)
	return p
}

// MulCRT computes the negacyclic product of a and b entirely through the
// CRT backend: split into limbs, NTT each limb in its own lattigo ring,
// pointwise-multiply in Montgomery form, inverse-NTT (lattigo applies the
// 1/n scaling), leave Montgomery form, then CRT-join the canonical limbs.
func MulCRT(a, b *Poly) (Poly, error) {
	crtRingsOnce.Do(buildCRTRings)
	if crtRingsErr != nil {
		return Poly{}, crtRingsErr
	}
	la, err := a.ToCRT()
	if err != nil {
		return Poly{}, err
	}
	lb, err := b.ToCRT()
	if err != nil {
		return Poly{}, err
	}

	limbsA := [2]*ring.Poly{la.L1, la.L2}
	limbsB := [2]*ring.Poly{lb.L1, lb.L2}
	out := [2]*ring.Poly{crtRings[0].NewPoly(), crtRings[1].NewPoly()}

	for i, r := range crtRings {
		r.MForm(limbsA[i], limbsA[i])
		r.MForm(limbsB[i], limbsB[i])
		r.NTT(limbsA[i], limbsA[i])
		r.NTT(limbsB[i], limbsB[i])
		r.MulCoeffsMontgomery(limbsA[i], limbsB[i], out[i])
		r.InvNTT(out[i], out[i])
		r.InvMForm(out[i], out[i])
	}

	return FromCRT(CRTLimbs{L1: out[0], L2: out[1]}), nil
}
