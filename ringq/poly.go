// Package ringq implements polynomial arithmetic over Z_q[x]/(x^n+1),
// n=512, q = Raccoon's two-prime modulus. It offers two interchangeable
// backends behind the same Poly type: a hand-rolled 64-bit Montgomery NTT
// (ntt.go) and a CRT backend built on lattigo's RNS ring (crt.go), mirroring
// the "dual arithmetic backends" split documented for the Raccoon core.
package ringq

import (
	"fmt"

	"raccoon/field"
)

// N is the fixed ring degree for every parameter set this package supports.
const N = 512

// Poly is a polynomial over Z with N coefficients, index i holding the
// coefficient of x^i. Modular operations that take no explicit modulus work
// mod field.Q64 and keep coefficients in the canonical range [0, q);
// Center moves a polynomial to the centered range when a caller needs
// signed representatives.
type Poly [N]int64

// Zero clears p in place.
func (p *Poly) Zero() {
	for i := range p {
		p[i] = 0
	}
}

// Copy returns a copy of p.
func (p *Poly) Copy() Poly {
	var r Poly
	copy(r[:], p[:])
	return r
}

// Add sets p = a+b, coefficient-wise, unreduced.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = a[i] + b[i]
	}
}

// Sub sets p = a-b, coefficient-wise, unreduced.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = a[i] - b[i]
	}
}

// AddQ sets p = a+b mod q. Inputs must be canonical ([0, q) per
// coefficient); the reduction is a single branchless conditional subtract,
// so masked-share sums never branch on their operands.
func (p *Poly) AddQ(a, b *Poly) {
	for i := range p {
		p[i] = field.CSub64(a[i]+b[i], field.Q64)
	}
}

// SubQ sets p = a-b mod q, canonical inputs, branchless fixup.
func (p *Poly) SubQ(a, b *Poly) {
	for i := range p {
		p[i] = field.CAdd64(a[i]-b[i], field.Q64)
	}
}

// AddM sets p = a+b with a conditional subtract of m on overflow.
func (p *Poly) AddM(a, b *Poly, m int64) {
	for i := range p {
		p[i] = field.CSub64(a[i]+b[i], m)
	}
}

// SubM sets p = a-b with a conditional add of m on underflow.
func (p *Poly) SubM(a, b *Poly, m int64) {
	for i := range p {
		p[i] = field.CAdd64(a[i]-b[i], m)
	}
}

// NegM sets p = -a mod m, canonical input.
func (p *Poly) NegM(a *Poly, m int64) {
	for i := range p {
		p[i] = field.CAdd64(-a[i], m)
	}
}

// ShlM left-shifts every coefficient by sh bits with a conditional
// subtract of m on overflow; the shifted inputs must stay below 2m.
func (p *Poly) ShlM(a *Poly, sh uint, m int64) {
	for i := range p {
		p[i] = field.CSub64(a[i]<<sh, m)
	}
}

// ShrM arithmetic-right-shifts every coefficient by sh bits with a
// conditional subtract of m.
func (p *Poly) ShrM(a *Poly, sh uint, m int64) {
	for i := range p {
		p[i] = field.CSub64(a[i]>>sh, m)
	}
}

// Round sets p = (a + 2^(sh-1)) >> sh with a conditional subtract of m, the
// nearest-integer scaling used when dropping the low nu_t/nu_w bits of a
// canonical coefficient. sh must be at least 1.
func (p *Poly) Round(a *Poly, sh uint, m int64) {
	h := int64(1) << (sh - 1)
	for i := range p {
		p[i] = field.CSub64((a[i]+h)>>sh, m)
	}
}

// Center moves coefficients from [0, m) to the centered range
// [-m/2, m/2] in place, branch-free.
func (p *Poly) Center(m int64) {
	c := m >> 1
	for i := range p {
		x := field.CSub64(p[i]+c, m)
		p[i] = x - c
	}
}

// Nonneg moves coefficients from [-m, m) back to [0, m) in place.
func (p *Poly) Nonneg(m int64) {
	for i := range p {
		p[i] = field.CAdd64(p[i], m)
	}
}

// Reduce fully reduces arbitrary coefficients into [0, m). Division-based;
// meant for test oracles and decoded public data, not share arithmetic.
func (p *Poly) Reduce(m int64) {
	for i := range p {
		p[i] = field.CMod(p[i], m)
	}
}

// InfNorm returns the infinity norm of p over centered representatives
// mod m.
func (p *Poly) InfNorm(m int64) int64 {
	var r int64
	for _, v := range p {
		x := field.CMod(v, m)
		if x > m/2 {
			x = m - x
		}
		if x > r {
			r = x
		}
	}
	return r
}

func (p *Poly) String() string {
	return fmt.Sprintf("Poly(n=%d, c0=%d, c1=%d, ...)", N, p[0], p[1])
}
