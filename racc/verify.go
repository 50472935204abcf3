package racc

import (
	"raccoon/field"
	"raccoon/internal/ctutil"
	"raccoon/ringq"
	"raccoon/xof"
)

// Verify checks sig over the digest mu under pk. It returns a single
// boolean with no reject-cause distinction; everything it touches is
// public data, so early exits on bounds are fine, but the final challenge
// comparison is constant-time.
func Verify(p *Params, sig *Signature, mu []byte, pk *PublicKey) bool {
	if len(sig.Ch) != p.CRH || len(sig.H) != p.K || len(sig.Z) != p.Ell {
		return false
	}
	if !p.CheckBounds(sig.H, sig.Z) {
		return false
	}

	a := expandA(p, pk.ASeed)

	var cp, cm ringq.Poly
	xof.ChalPoly(&cp, sig.Ch, p.Omega)
	cp.ToNTT()
	cm.ScalarMulMont(&cp, field.MontRR64)
	cm.Nonneg(field.Q64)

	zn := make([]ringq.Poly, p.Ell)
	for i := range zn {
		zn[i] = sig.Z[i]
		zn[i].Reduce(field.Q64)
		zn[i].ToNTT()
	}

	// Recompute the rounded commitment: w = round(A*z - 2^nu_t*c*t) + h.
	w := make([]ringq.Poly, p.K)
	var tn ringq.Poly
	for i := 0; i < p.K; i++ {
		tn.ShlM(&pk.T[i], p.NuT, field.Q64)
		tn.ToNTT()

		var y, ct ringq.Poly
		for j := 0; j < p.Ell; j++ {
			y.MulAccNTT(&a[i][j], &zn[j])
		}
		y.Nonneg(field.Q64)
		ct.MulNTT(&cm, &tn)
		ct.Nonneg(field.Q64)
		y.SubQ(&y, &ct)
		y.FromNTT()
		y.Round(&y, p.NuW, p.QW())

		qw := p.QW()
		for t := 0; t < ringq.N; t++ {
			w[i][t] = field.CMod(y[t]+sig.H[i][t], qw)
		}
	}

	ch := make([]byte, p.CRH)
	xof.ChalHash(ch, mu, w, p.WBytes())
	return ctutil.Equal(sig.Ch, ch)
}
