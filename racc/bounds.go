package racc

import (
	"raccoon/field"
	"raccoon/ringq"
)

// measureBounds evaluates the three signature norm checks and returns the
// observed quantities alongside the verdict. h must hold centered
// coefficients; z coefficients may be canonical [0, q) or centered, both
// are folded to absolute representatives.
//
// The L2 accumulator replicates the reference's deliberate scaling: z is
// shifted down 32 bits before squaring and the h term up by 2*nu_w-64, so
// the joint quantity compares against B22 in 2^-64 units. The low bits
// discarded by the shift are part of the published bound derivation; do
// not restore them.
func (p *Params) measureBounds(h, z []ringq.Poly) (hoo, zoo, l2 int64, ok bool) {
	var h22, z22 int64
	for i := range h {
		for _, x := range h[i] {
			if x < 0 {
				x = -x
			}
			if x > hoo {
				hoo = x
			}
			h22 += x * x
		}
	}
	for i := range z {
		for _, x := range z[i] {
			if x < 0 {
				x += field.Q64
			}
			if x > field.Q64/2 {
				x = field.Q64 - x
			}
			if x > zoo {
				zoo = x
			}
			x >>= 32
			z22 += x * x
		}
	}
	l2 = (h22 << (2*p.NuW - 64)) + z22
	ok = hoo <= p.BInfH() && zoo <= p.BInf && l2 <= p.B22
	return hoo, zoo, l2, ok
}

// CheckBounds reports whether (h, z) satisfy the signature norm bounds.
func (p *Params) CheckBounds(h, z []ringq.Poly) bool {
	_, _, _, ok := p.measureBounds(h, z)
	return ok
}
