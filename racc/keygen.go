package racc

import (
	"fmt"

	"raccoon/entropy"
	"raccoon/field"
	"raccoon/mask"
	"raccoon/ringq"
	"raccoon/xof"
)

// expandA deterministically expands the public seed into the k x ell
// matrix, already in the NTT domain and Montgomery-scaled so that every
// later pointwise product against it lands back in canonical form.
func expandA(p *Params, aSeed []byte) [][]ringq.Poly {
	a := make([][]ringq.Poly, p.K)
	seed := make([]byte, xof.HeaderSize+len(aSeed))
	copy(seed[xof.HeaderSize:], aSeed)
	for i := range a {
		a[i] = make([]ringq.Poly, p.Ell)
		for j := range a[i] {
			hdr := xof.Header(xof.TagExpandA, byte(i), byte(j), 0)
			copy(seed[:xof.HeaderSize], hdr[:])
			xof.SampleQ(&a[i][j], seed)
			a[i][j].ToNTT()
			a[i][j].ScalarMulMont(&a[i][j], field.MontRR64)
			a[i][j].Nonneg(field.Q64)
		}
	}
	return a
}

// Keygen generates a fresh keypair. The secret shares come out in the NTT
// domain and stay masked for the key's whole lifetime; the returned public
// key's Tr field is left empty for the serializing caller to fill.
func Keygen(p *Params, es entropy.Source, mrg *mask.RNG) (*PublicKey, *SecretKey, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	sk := NewSecretKey(p)
	if err := es.Fill(sk.PK.ASeed); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	// [[s]]: zero-encode, add the masked secret noise, move to NTT domain.
	for i := 0; i < p.Ell; i++ {
		zeroEncoding(sk.S[i], mrg)
		if err := addRepNoise(sk.S[i], i, p.UT, p, es, mrg); err != nil {
			sk.Wipe()
			return nil, nil, err
		}
		for j := 0; j < p.D; j++ {
			sk.S[i][j].ToNTT()
		}
	}

	a := expandA(p, sk.PK.ASeed)

	// [[t]] = A * [[s]], share by share, then noise and rounding.
	t := make([]ringq.Poly, p.D)
	var ti ringq.Poly
	for i := 0; i < p.K; i++ {
		wipe(t)
		for j := 0; j < p.D; j++ {
			for m := 0; m < p.Ell; m++ {
				t[j].MulAccNTT(&a[i][m], &sk.S[m][j])
			}
			t[j].Nonneg(field.Q64)
			t[j].FromNTT()
		}
		if err := addRepNoise(t, i, p.UT, p, es, mrg); err != nil {
			wipe(t)
			sk.Wipe()
			return nil, nil, err
		}
		decode(&ti, t)
		sk.PK.T[i].Round(&ti, p.NuT, p.QT())
	}
	wipe(t)
	ti.Zero()

	pk := NewPublicKey(p)
	copy(pk.ASeed, sk.PK.ASeed)
	copy(pk.T, sk.PK.T)
	return pk, sk, nil
}
