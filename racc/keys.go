package racc

import "raccoon/ringq"

// PublicKey is the internal-form verification key. T coefficients live in
// [0, q_t). Tr is the collision-resistant hash of the serialized key; it
// is filled by the codec (decode always recomputes it, and key generation
// leaves it to the envelope that serializes the fresh key).
type PublicKey struct {
	ASeed []byte
	T     []ringq.Poly
	Tr    []byte
}

// SecretKey is the internal-form signing key: the embedded public key and
// the d-share masked secret vector. S[i][j] is share j of secret
// polynomial i; the arithmetic share sum mod q is the logical secret, and
// individual shares are uniform subject to that sum. Shares are stored in
// the NTT domain, canonical [0, q).
type SecretKey struct {
	PK PublicKey
	S  [][]ringq.Poly
}

// Signature is the internal form of (ch, h, z): the challenge hash, the
// hint vector with small centered coefficients, and the response vector
// canonical in [0, q).
type Signature struct {
	Ch []byte
	H  []ringq.Poly
	Z  []ringq.Poly
}

// NewPublicKey allocates an empty public key shaped for p.
func NewPublicKey(p *Params) *PublicKey {
	return &PublicKey{
		ASeed: make([]byte, p.Sec),
		T:     make([]ringq.Poly, p.K),
		Tr:    make([]byte, p.CRH),
	}
}

// NewSecretKey allocates an empty secret key shaped for p.
func NewSecretKey(p *Params) *SecretKey {
	sk := &SecretKey{PK: *NewPublicKey(p), S: make([][]ringq.Poly, p.Ell)}
	for i := range sk.S {
		sk.S[i] = make([]ringq.Poly, p.D)
	}
	return sk
}

// NewSignature allocates an empty signature shaped for p.
func NewSignature(p *Params) *Signature {
	return &Signature{
		Ch: make([]byte, p.CRH),
		H:  make([]ringq.Poly, p.K),
		Z:  make([]ringq.Poly, p.Ell),
	}
}

// Wipe zeroizes the masked secret shares. The embedded public key is left
// intact.
func (sk *SecretKey) Wipe() {
	for i := range sk.S {
		wipe(sk.S[i])
	}
}
