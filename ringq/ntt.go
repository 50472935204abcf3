package ringq

import (
	"math/big"

	"raccoon/field"
)

// Psi64 is a primitive 2N-th root of unity modulo field.Q64, found offline
// by CRT-combining a primitive 1024-th root mod q1 with one mod q2 (q64 is
// not prime, so no single-modulus "primitive root mod q" search applies —
// existence and construction go through the q1/q2 factorization instead).
// Verified: Psi64^1024 == 1 and Psi64^512 == q-1 (mod q).
const Psi64 int64 = 540539023378855

var (
	fwdTwist [N]int64   // psiPow[i], Montgomery form, forward pre-twist
	invTwist [N]int64   // psiInvPow[i], Montgomery form, inverse post-twist
	stageTw  [9][]int64 // stageTw[s][j]: Montgomery-form forward twiddles, stage s (length 2<<s)
	stageInv [9][]int64 // matching inverse-direction twiddles
	ninvMont int64      // Montgomery form of n^-1 mod q, folds INTT scaling
)

func init() {
	q := big.NewInt(field.Q64)
	psi := big.NewInt(Psi64)
	psiInv := new(big.Int).ModInverse(psi, q)
	omega := new(big.Int).Exp(psi, big.NewInt(2), q)
	omegaInv := new(big.Int).ModInverse(omega, q)

	pw := big.NewInt(1)
	ipw := big.NewInt(1)
	for i := 0; i < N; i++ {
		fwdTwist[i] = field.ToMont64(pw.Int64())
		invTwist[i] = field.ToMont64(ipw.Int64())
		pw.Mod(pw.Mul(pw, psi), q)
		ipw.Mod(ipw.Mul(ipw, psiInv), q)
	}

	nBig := big.NewInt(N)
	for s := 0; s < 9; s++ {
		length := 2 << uint(s)
		half := length / 2
		exp := new(big.Int).Div(nBig, big.NewInt(int64(length)))
		ang := new(big.Int).Exp(omega, exp, q)
		angInv := new(big.Int).Exp(omegaInv, exp, q)
		stageTw[s] = make([]int64, half)
		stageInv[s] = make([]int64, half)
		w := big.NewInt(1)
		wi := big.NewInt(1)
		for j := 0; j < half; j++ {
			stageTw[s][j] = field.ToMont64(w.Int64())
			stageInv[s][j] = field.ToMont64(wi.Int64())
			w.Mod(w.Mul(w, ang), q)
			wi.Mod(wi.Mul(wi, angInv), q)
		}
	}

	ninv := new(big.Int).ModInverse(nBig, q)
	ninvMont = field.ToMont64(ninv.Int64())
}

// normalize brings x, known to satisfy -2q < x < 2q, back into (-q, q).
func normalize(x, q int64) int64 {
	if x >= q {
		x -= q
	} else if x <= -q {
		x += q
	}
	return x
}

func bitReverse(a *Poly) {
	j := 0
	for i := 1; i < N; i++ {
		bit := N >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// ToNTT applies the forward negacyclic NTT in place: p may hold canonical
// or centered coefficients; afterward p holds the evaluation-domain
// representation with every coefficient canonical in [0, q). Pointwise
// products taken with MulNTT carry a 2^-64 Montgomery deficit; callers
// compensate once per product chain with ScalarMulMont(MontRR64), or keep
// one operand pre-scaled by R so products come out canonical directly.
func (p *Poly) ToNTT() {
	q := field.Q64
	for i := range p {
		p[i] = field.MulMont64(p[i], fwdTwist[i])
	}
	bitReverse(p)
	for s := 0; s < 9; s++ {
		length := 2 << uint(s)
		half := length / 2
		tw := stageTw[s]
		for start := 0; start < N; start += length {
			for j := 0; j < half; j++ {
				u := p[start+j]
				v := field.MulMont64(p[start+j+half], tw[j])
				p[start+j] = normalize(u+v, q)
				p[start+j+half] = normalize(u-v, q)
			}
		}
	}
	for i := range p {
		p[i] = field.CAdd64(p[i], q)
	}
}

// FromNTT applies the inverse negacyclic NTT in place, including the 1/N
// scaling; output coefficients are canonical in [0, q).
func (p *Poly) FromNTT() {
	q := field.Q64
	for s := 8; s >= 0; s-- {
		length := 2 << uint(s)
		half := length / 2
		tw := stageInv[s]
		for start := 0; start < N; start += length {
			for j := 0; j < half; j++ {
				u := p[start+j]
				v := p[start+j+half]
				p[start+j] = normalize(u+v, q)
				diff := normalize(u-v, q)
				p[start+j+half] = field.MulMont64(diff, tw[j])
			}
		}
	}
	bitReverse(p)
	for i := range p {
		p[i] = field.MulMont64(p[i], ninvMont)
		p[i] = field.CAdd64(field.MulMont64(p[i], invTwist[i]), q)
	}
}

// MulNTT sets p to the coefficient-wise (NTT-domain) product of a and b.
// The result carries one Montgomery deficit (a*b*2^-64 mod q) per
// coefficient, in (-q, q).
func (p *Poly) MulNTT(a, b *Poly) {
	for i := range p {
		p[i] = field.MulMont64(a[i], b[i])
	}
}

// MulAccNTT accumulates p += a*b coefficient-wise in the NTT domain via one
// Montgomery multiply per coefficient; the same deficit convention as
// MulNTT applies to the added product only, and a conditional fixup keeps
// the running value in (-q, q).
func (p *Poly) MulAccNTT(a, b *Poly) {
	for i := range p {
		p[i] = normalize(p[i]+field.MulMont64(a[i], b[i]), field.Q64)
	}
}

// ScalarMulMont sets p = a * c through one Montgomery multiply per
// coefficient. With c = field.MontRR64 this lifts a canonical polynomial
// into Montgomery form (or equivalently cancels one pending deficit).
func (p *Poly) ScalarMulMont(a *Poly, c int64) {
	for i := range p {
		p[i] = field.MulMont64(a[i], c)
	}
}

// MulQ sets p to the negacyclic product a*b mod q, taking a and b in
// canonical (non-NTT) form and returning centered coefficients. a and b
// are left untouched.
func (p *Poly) MulQ(a, b *Poly) {
	ta, tb := a.Copy(), b.Copy()
	ta.ToNTT()
	tb.ToNTT()
	p.MulNTT(&ta, &tb)
	p.ScalarMulMont(p, field.MontRR64)
	p.FromNTT()
	p.Center(field.Q64)
}
