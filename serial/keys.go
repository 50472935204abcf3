package serial

import (
	"fmt"

	"raccoon/entropy"
	"raccoon/field"
	"raccoon/keccak"
	"raccoon/racc"
	"raccoon/ringq"
	"raccoon/xof"
)

// EncodePK serializes pk as a_seed || pack(t, q_bits - nu_t). The result
// is exactly p.PKSize() bytes.
func EncodePK(p *racc.Params, pk *racc.PublicKey) ([]byte, error) {
	if len(pk.ASeed) != p.Sec || len(pk.T) != p.K {
		return nil, fmt.Errorf("%w: public key shape", racc.ErrMalformedInput)
	}
	b := make([]byte, p.PKSize())
	l := copy(b, pk.ASeed)
	for i := 0; i < p.K; i++ {
		l += encodeBits(b[l:], &pk.T[i], uint(racc.QBits)-p.NuT)
	}
	if l != p.PKSize() {
		return nil, fmt.Errorf("%w: public key length %d", racc.ErrMalformedInput, l)
	}
	return b, nil
}

// DecodePK parses a serialized public key and fills Tr with the
// collision-resistant hash of the encoding, SHAKE256(b).
func DecodePK(p *racc.Params, b []byte) (*racc.PublicKey, error) {
	if len(b) != p.PKSize() {
		return nil, fmt.Errorf("%w: public key length %d", racc.ErrMalformedInput, len(b))
	}
	pk := racc.NewPublicKey(p)
	l := copy(pk.ASeed, b[:p.Sec])
	for i := 0; i < p.K; i++ {
		l += decodeBits(&pk.T[i], b[l:], uint(racc.QBits)-p.NuT, false)
	}
	keccak.ShakeSum256(pk.Tr, b)
	return pk, nil
}

// EncodeSK serializes sk as pk || mk_1..mk_{d-1} || pack(s0', q_bits).
// The d-1 mask keys are drawn fresh from es on every call; share zero is
// re-based so that together with the mask-key expansions the decoded
// sharing sums to the same logical secret. Shares are carried in the NTT
// domain, matching their in-memory representation.
func EncodeSK(p *racc.Params, sk *racc.SecretKey, es entropy.Source) ([]byte, error) {
	pkb, err := EncodePK(p, &sk.PK)
	if err != nil {
		return nil, err
	}
	b := make([]byte, p.SKSize())
	l := copy(b, pkb)

	// s0' starts as share zero and absorbs s_j - SampleQ(mk_j) for every
	// regenerated share.
	s0 := make([]ringq.Poly, p.Ell)
	for i := range s0 {
		s0[i] = sk.S[i][0]
	}

	seed := make([]byte, xof.HeaderSize+p.Sec)
	var r ringq.Poly
	for j := 1; j < p.D; j++ {
		if err := es.Fill(b[l : l+p.Sec]); err != nil {
			return nil, fmt.Errorf("%w: %v", racc.ErrEntropy, err)
		}
		copy(seed[xof.HeaderSize:], b[l:l+p.Sec])
		l += p.Sec

		for i := 0; i < p.Ell; i++ {
			hdr := xof.Header(xof.TagMaskKey, byte(i), byte(j), 0)
			copy(seed[:xof.HeaderSize], hdr[:])
			xof.SampleQ(&r, seed)
			s0[i].SubQ(&s0[i], &r)
			s0[i].AddQ(&s0[i], &sk.S[i][j])
		}
	}

	for i := 0; i < p.Ell; i++ {
		l += encodeBits(b[l:], &s0[i], uint(racc.QBits))
		s0[i].Zero()
	}
	r.Zero()
	if l != p.SKSize() {
		return nil, fmt.Errorf("%w: secret key length %d", racc.ErrMalformedInput, l)
	}
	return b, nil
}

// DecodeSK parses a serialized secret key: shares 1..d-1 are regenerated
// from the stored mask keys, share zero is read in full, and the embedded
// public key comes back with Tr set.
func DecodeSK(p *racc.Params, b []byte) (*racc.SecretKey, error) {
	if len(b) != p.SKSize() {
		return nil, fmt.Errorf("%w: secret key length %d", racc.ErrMalformedInput, len(b))
	}
	pk, err := DecodePK(p, b[:p.PKSize()])
	if err != nil {
		return nil, err
	}
	sk := racc.NewSecretKey(p)
	sk.PK = *pk
	l := p.PKSize()

	seed := make([]byte, xof.HeaderSize+p.Sec)
	for j := 1; j < p.D; j++ {
		copy(seed[xof.HeaderSize:], b[l:l+p.Sec])
		l += p.Sec
		for i := 0; i < p.Ell; i++ {
			hdr := xof.Header(xof.TagMaskKey, byte(i), byte(j), 0)
			copy(seed[:xof.HeaderSize], hdr[:])
			xof.SampleQ(&sk.S[i][j], seed)
		}
	}
	for i := 0; i < p.Ell; i++ {
		l += decodeBits(&sk.S[i][0], b[l:], uint(racc.QBits), false)
		for _, c := range sk.S[i][0] {
			if c >= field.Q64 {
				sk.Wipe()
				return nil, fmt.Errorf("%w: share coefficient out of range", racc.ErrMalformedInput)
			}
		}
	}
	return sk, nil
}
