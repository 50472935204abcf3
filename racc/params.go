// Package racc implements the Raccoon signature core: masked key
// generation, the rejection-sampling sign loop, and verification, over the
// ring arithmetic in ringq. Keys and signatures cross package boundaries
// in their internal form; the serial package owns the byte-level codecs
// and the signverify package the message envelope.
package racc

import (
	"errors"
	"fmt"

	"raccoon/field"
	"raccoon/ringq"
)

// Sentinel errors shared across the core and its codec/envelope layers.
var (
	ErrMalformedInput    = errors.New("racc: malformed input")
	ErrEntropy           = errors.New("racc: entropy source failure")
	ErrParameterMismatch = errors.New("racc: parameter mismatch")
)

// QBits is the bit width of q; every coefficient fits 49 bits.
const QBits = 49

// ZLowBits is the low-bit split of the signature z encoding: the low 40
// bits of |z| are emitted verbatim, the remainder as a unary run.
const ZLowBits = 40

// Params is one compiled-in Raccoon parameter selection. A single set is
// active per build; the fields exist so the derived quantities and codecs
// are written once rather than against scattered constants.
type Params struct {
	Sec   int   // kappa in bytes: seed and mask-key length
	CRH   int   // 2*kappa in bytes: tr, mu and challenge-hash length
	D     int   // number of shares (power of two, >= 1)
	Ell   int   // secret vector length
	K     int   // public vector length
	NuT   uint  // public key rounding shift
	NuW   uint  // commitment rounding shift
	UT    uint  // secret-noise width in bits
	UW    uint  // commitment-noise width in bits
	Rep   int   // noise-addition repetition count
	Omega int   // challenge Hamming weight
	BInf  int64 // signature infinity-norm bound
	B22   int64 // scaled squared-L2 bound (2^-64 units folded in)
	SigSz int   // fixed serialized signature length in bytes
}

// Preset128 returns the NIST level 1 selection: d = 4 shares over the
// 49-bit double-prime modulus.
func Preset128() Params {
	return Params{
		Sec:   16,
		CRH:   32,
		D:     4,
		Ell:   4,
		K:     5,
		NuT:   42,
		NuW:   44,
		UT:    6,
		UW:    41,
		Rep:   2,
		Omega: 19,
		BInf:  1 << 46,
		B22:   1 << 41,
		SigSz: 11524,
	}
}

// QT is the rounded public-key coefficient domain q >> nu_t.
func (p *Params) QT() int64 { return field.Q64 >> p.NuT }

// QW is the rounded commitment coefficient domain q >> nu_w.
func (p *Params) QW() int64 { return field.Q64 >> p.NuW }

// BInfH is the scaled infinity-norm bound for the hint,
// round(B_inf / 2^nu_w).
func (p *Params) BInfH() int64 {
	return (p.BInf + (int64(1) << (p.NuW - 1))) >> p.NuW
}

// WBytes is the per-coefficient byte width of a rounded commitment inside
// the challenge hash.
func (p *Params) WBytes() int { return (QBits - int(p.NuW) + 7) / 8 }

// PKSize is the serialized public key length: seed plus the bit-packed t
// vector at q_bits - nu_t bits per coefficient.
func (p *Params) PKSize() int {
	return p.Sec + (p.K*ringq.N*(QBits-int(p.NuT))+7)/8
}

// SKSize is the serialized secret key length: the embedded public key,
// d-1 mask keys, and share zero bit-packed at full q width.
func (p *Params) SKSize() int {
	return p.PKSize() + (p.D-1)*p.Sec + (p.Ell*ringq.N*QBits+7)/8
}

// SigSize is the fixed serialized signature length; encodings that would
// exceed it force a sign retry.
func (p *Params) SigSize() int { return p.SigSz }

// Validate rejects parameter selections the arithmetic cannot carry.
func (p *Params) Validate() error {
	switch {
	case p.Sec <= 0 || p.CRH != 2*p.Sec:
		return fmt.Errorf("%w: kappa/crh", ErrParameterMismatch)
	case p.D < 1 || p.D&(p.D-1) != 0:
		return fmt.Errorf("%w: share count %d not a power of two", ErrParameterMismatch, p.D)
	case p.Ell < 1 || p.K < 1 || p.Ell > 255 || p.K > 255:
		return fmt.Errorf("%w: vector lengths", ErrParameterMismatch)
	case p.NuT == 0 || p.NuW == 0 || int(p.NuT) >= QBits || int(p.NuW) >= QBits:
		return fmt.Errorf("%w: rounding shifts", ErrParameterMismatch)
	case p.UT == 0 || p.UW == 0 || p.UW >= 63:
		return fmt.Errorf("%w: noise widths", ErrParameterMismatch)
	case p.Rep < 1 || p.Rep > 255 || p.Omega < 1 || p.Omega > 255:
		return fmt.Errorf("%w: rep/omega", ErrParameterMismatch)
	case p.BInf <= 0 || p.BInf >= field.Q64/2 || p.B22 <= 0:
		return fmt.Errorf("%w: norm bounds", ErrParameterMismatch)
	case 2*int(p.NuW) <= 64:
		return fmt.Errorf("%w: 2*nu_w must exceed 64 for the L2 scaling", ErrParameterMismatch)
	case p.SigSz <= p.CRH:
		return fmt.Errorf("%w: signature budget", ErrParameterMismatch)
	}
	return nil
}
