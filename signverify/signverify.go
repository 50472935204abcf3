// Package signverify is the message envelope around the Raccoon core: it
// moves keys and signatures across the byte-level codecs, computes the
// pk-bound digest mu = SHAKE256(tr || msg), drives the retry loop when a
// signature encoding overflows its fixed budget, and offers the NIST
// "signed message" framing next to the detached operations.
package signverify

import (
	"fmt"

	"raccoon/entropy"
	"raccoon/mask"
	"raccoon/racc"
	"raccoon/serial"
	"raccoon/xof"
)

// NewMaskRNG constructs the per-call masking generator set. Swappable so a
// build can select the Ascon backend the same way the reference flips its
// MASK_RANDOM_ASCON compile switch.
var NewMaskRNG = mask.NewLFSRRNG

// KeyGen generates a keypair and returns its serialized forms, exactly
// PKSize and SKSize bytes.
func KeyGen(p *racc.Params, es entropy.Source) (pkBytes, skBytes []byte, err error) {
	pk, sk, err := racc.Keygen(p, es, NewMaskRNG(p.D))
	if err != nil {
		return nil, nil, err
	}
	defer sk.Wipe()

	pkBytes, err = serial.EncodePK(p, pk)
	if err != nil {
		return nil, nil, err
	}
	skBytes, err = serial.EncodeSK(p, sk, es)
	if err != nil {
		return nil, nil, err
	}
	return pkBytes, skBytes, nil
}

// SignStats reports the retry behavior of one envelope signature: the
// core stats of the accepted attempt and how many encode attempts the
// fixed signature budget forced.
type SignStats struct {
	Core           racc.Stats
	EncodeAttempts int
}

// SignDetached signs msg under the serialized secret key and returns a
// detached signature of exactly SigSize bytes.
func SignDetached(p *racc.Params, skBytes, msg []byte, es entropy.Source) ([]byte, error) {
	return SignDetachedWithStats(p, skBytes, msg, es, nil)
}

// SignDetachedWithStats is SignDetached with an optional retry observer.
func SignDetachedWithStats(p *racc.Params, skBytes, msg []byte, es entropy.Source, st *SignStats) ([]byte, error) {
	sk, err := serial.DecodeSK(p, skBytes)
	if err != nil {
		return nil, err
	}
	defer sk.Wipe()

	mu := make([]byte, p.CRH)
	xof.ChalMu(mu, sk.PK.Tr, msg)

	mrg := NewMaskRNG(p.D)
	sig := racc.NewSignature(p)

	// Both rejection points live here: the core loops on its norm bounds
	// internally, and an encoding overflow sends the whole attempt back for
	// fresh randomness.
	for attempt := 1; ; attempt++ {
		var core racc.Stats
		if err := racc.SignWithStats(p, sig, mu, sk, es, mrg, &core); err != nil {
			return nil, err
		}
		b, ok := serial.EncodeSig(p, sig)
		if ok {
			if st != nil {
				st.Core = core
				st.EncodeAttempts = attempt
			}
			return b, nil
		}
	}
}

// VerifyDetached checks a detached signature over msg under the
// serialized public key. A single boolean covers every reject cause.
func VerifyDetached(p *racc.Params, pkBytes, msg, sigBytes []byte) bool {
	pk, err := serial.DecodePK(p, pkBytes)
	if err != nil {
		return false
	}
	sig, err := serial.DecodeSig(p, sigBytes)
	if err != nil {
		return false
	}
	mu := make([]byte, p.CRH)
	xof.ChalMu(mu, pk.Tr, msg)
	return racc.Verify(p, sig, mu, pk)
}

// SignMessage produces the NIST envelope sm = sig || msg, where the
// signature occupies its full fixed budget.
func SignMessage(p *racc.Params, skBytes, msg []byte, es entropy.Source) ([]byte, error) {
	sig, err := SignDetached(p, skBytes, msg, es)
	if err != nil {
		return nil, err
	}
	sm := make([]byte, 0, len(sig)+len(msg))
	sm = append(sm, sig...)
	sm = append(sm, msg...)
	return sm, nil
}

// Open verifies a signed message and returns the embedded message.
func Open(p *racc.Params, pkBytes, sm []byte) ([]byte, error) {
	if len(sm) < p.SigSize() {
		return nil, fmt.Errorf("%w: signed message shorter than a signature", racc.ErrMalformedInput)
	}
	msg := sm[p.SigSize():]
	if !VerifyDetached(p, pkBytes, msg, sm[:p.SigSize()]) {
		return nil, fmt.Errorf("%w: signature rejected", racc.ErrMalformedInput)
	}
	out := make([]byte, len(msg))
	copy(out, msg)
	return out, nil
}
