package racc

import (
	"raccoon/entropy"
	"raccoon/field"
	"raccoon/mask"
	"raccoon/ringq"
	"raccoon/xof"
)

// Stats reports what the sign loop observed on its accepting iteration:
// the number of commitment attempts and the norm quantities CheckBounds
// evaluated. All values are derived from the published signature, not from
// secret state.
type Stats struct {
	Attempts int
	HInf     int64
	ZInf     int64
	L2Scaled int64
}

// Sign produces a signature over the pk-bound digest mu. sk must carry
// NTT-domain shares as produced by Keygen or the secret-key decoder; its
// sharing is refreshed in place as a side effect, which preserves the
// logical secret.
func Sign(p *Params, sig *Signature, mu []byte, sk *SecretKey, es entropy.Source, mrg *mask.RNG) error {
	return SignWithStats(p, sig, mu, sk, es, mrg, nil)
}

// SignWithStats is Sign with an optional observer for the retry loop.
func SignWithStats(p *Params, sig *Signature, mu []byte, sk *SecretKey, es entropy.Source, mrg *mask.RNG, st *Stats) error {
	a := expandA(p, sk.PK.ASeed)

	// NTT(2^nu_t * t): the public-key contribution to the hint equation.
	tn := make([]ringq.Poly, p.K)
	for i := range tn {
		tn[i].ShlM(&sk.PK.T[i], p.NuT, field.Q64)
		tn[i].ToNTT()
	}

	mr := make([][]ringq.Poly, p.Ell)
	for i := range mr {
		mr[i] = make([]ringq.Poly, p.D)
	}
	w := make([]ringq.Poly, p.D)
	vw := make([]ringq.Poly, p.K)
	zn := make([]ringq.Poly, p.Ell)
	var cp, cm, t ringq.Poly

	defer func() {
		for i := range mr {
			wipe(mr[i])
		}
		wipe(w)
		wipe(zn)
		cp.Zero()
		cm.Zero()
		t.Zero()
	}()

	for attempt := 1; ; attempt++ {
		// Commitment: [[r]] fresh per attempt, w = A*[[r]] rounded.
		for i := 0; i < p.Ell; i++ {
			zeroEncoding(mr[i], mrg)
			if err := addRepNoise(mr[i], i, p.UW, p, es, mrg); err != nil {
				return err
			}
			for j := 0; j < p.D; j++ {
				mr[i][j].ToNTT()
			}
		}
		for i := 0; i < p.K; i++ {
			wipe(w)
			for j := 0; j < p.D; j++ {
				for m := 0; m < p.Ell; m++ {
					w[j].MulAccNTT(&a[i][m], &mr[m][j])
				}
				w[j].Nonneg(field.Q64)
				w[j].FromNTT()
			}
			if err := addRepNoise(w, i, p.UW, p, es, mrg); err != nil {
				return err
			}
			decode(&vw[i], w)
			vw[i].Round(&vw[i], p.NuW, p.QW())
		}

		// Challenge.
		xof.ChalHash(sig.Ch, mu, vw, p.WBytes())
		xof.ChalPoly(&cp, sig.Ch, p.Omega)
		cp.ToNTT()
		cm.ScalarMulMont(&cp, field.MontRR64)
		cm.Nonneg(field.Q64)

		// Response: [[z]] = c*[[s]] + [[r]], refreshed around the product.
		for i := 0; i < p.Ell; i++ {
			refresh(sk.S[i], mrg)
			refresh(mr[i], mrg)
			for j := 0; j < p.D; j++ {
				t.MulNTT(&cm, &sk.S[i][j])
				t.Nonneg(field.Q64)
				mr[i][j].AddQ(&mr[i][j], &t)
			}
			refresh(mr[i], mrg)
			decode(&zn[i], mr[i])
			sig.Z[i] = zn[i]
			sig.Z[i].FromNTT()
		}

		// Hint: h = vw - round(A*z - 2^nu_t*c*t), centered mod q_w.
		for i := 0; i < p.K; i++ {
			var y, ct ringq.Poly
			for j := 0; j < p.Ell; j++ {
				y.MulAccNTT(&a[i][j], &zn[j])
			}
			y.Nonneg(field.Q64)
			ct.MulNTT(&cm, &tn[i])
			ct.Nonneg(field.Q64)
			y.SubQ(&y, &ct)
			y.FromNTT()
			y.Round(&y, p.NuW, p.QW())
			sig.H[i].SubM(&vw[i], &y, p.QW())
			sig.H[i].Center(p.QW())
		}

		hoo, zoo, l2, ok := p.measureBounds(sig.H, sig.Z)
		if ok {
			if st != nil {
				st.Attempts = attempt
				st.HInf = hoo
				st.ZInf = zoo
				st.L2Scaled = l2
			}
			return nil
		}
	}
}
