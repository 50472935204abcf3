// Package field implements the modular arithmetic backends for the ring
// Z_q[x]/(x^n+1) used by the Raccoon signature core: a single 64-bit
// Montgomery modulus path (this file) and a dual-32-bit CRT path
// (mont32.go), matching the two reference variants described in spec
// §4.2/§9 ("Dual arithmetic backends").
package field

import "math/bits"

// Q64 is the Raccoon-512 modulus q = q1*q2, q1 = 2^24-2^18+1,
// q2 = 2^25-2^18+1.
const Q64 int64 = 549824583172097

// Montgomery constants for Q64, R = 2^64 mod q. Reproduced verbatim from
// the reference implementation's mont64.h, and they satisfy:
// MONT_R = 2^64 mod q, MONT_RR = R^2 mod q, MONT_NI = RR * n^-1 mod q
// (n = 512, used to fold the 1/n INTT scaling into one Montgomery
// multiply), MONT_QI = (-q)^-1 mod 2^64.
const (
	MontR64  int64 = 129308285697266
	MontRR64 int64 = 506614974174448
	MontNI64 int64 = 293083792181611
	MontQI64 int64 = 2231854466648768511
)

// Add64 returns x+y with no modular reduction — callers normalize with
// CAdd64/CSub64 as needed, mirroring mont64_add.
func Add64(x, y int64) int64 { return x + y }

// Sub64 returns x-y with no modular reduction, mirroring mont64_sub.
func Sub64(x, y int64) int64 { return x - y }

// CAdd64 conditionally adds m to x when x is negative. Requires
// -m <= x < m; returns a value in [0, m).
func CAdd64(x, m int64) int64 {
	t := x >> 63 // all-ones if x < 0, else 0
	return x + (t & m)
}

// CSub64 conditionally subtracts m from x when x >= m. Requires
// 0 <= x < 2*m; returns a value in [0, m).
func CSub64(x, m int64) int64 {
	t := x - m
	return t + ((t >> 63) & m)
}

// mul128 returns the signed 128-bit product of x and y as two two's
// complement uint64 halves (hi, lo), using the standard correction over
// bits.Mul64's unsigned product: a negative operand contributes an extra
// 2^64 times the other operand, which is subtracted from the high half.
func mul128(x, y int64) (hi, lo uint64) {
	ux, uy := uint64(x), uint64(y)
	hi, lo = bits.Mul64(ux, uy)
	if x < 0 {
		hi -= uy
	}
	if y < 0 {
		hi -= ux
	}
	return hi, lo
}

// add128 adds a signed 128-bit addend (given as its two's complement
// halves) into (hi, lo).
func add128(hi, lo, ahi, alo uint64) (rhi, rlo uint64) {
	var carry uint64
	rlo, carry = bits.Add64(lo, alo, 0)
	rhi, _ = bits.Add64(hi, ahi, carry)
	return rhi, rlo
}

// signExtend128 widens a signed int64 into its 128-bit two's complement
// halves.
func signExtend128(x int64) (hi, lo uint64) {
	lo = uint64(x)
	if x < 0 {
		hi = ^uint64(0)
	}
	return hi, lo
}

// redc64 is the Montgomery reduction: given a 128-bit signed x
// (|x| < 2^111), returns r in [-q, q) with r == x * 2^-64 (mod q).
func redc64(hi, lo uint64) int64 {
	m := lo * uint64(MontQI64) // low 64 bits of x*QI, truncating multiply
	thi, tlo := bits.Mul64(m, uint64(Q64))
	rhi, _ := add128(hi, lo, thi, tlo)
	// the top 64 bits of a 128-bit two's complement value IS the signed
	// result of an arithmetic right shift by 64.
	return int64(rhi)
}

// Redc64 reduces a double-width product a*b (both already widened) by
// 2^-64 mod q, exposed for callers that built the widened product
// themselves.
func Redc64(aHi, aLo uint64) int64 { return redc64(aHi, aLo) }

// MulMont64 computes redc(a*b): a, b must be Montgomery-form residues (or
// one plain, one Montgomery, per the usual Montgomery-multiplication
// convention); returns a value in [-q, q).
func MulMont64(a, b int64) int64 {
	hi, lo := mul128(a, b)
	return redc64(hi, lo)
}

// MulAddMont64 computes redc(a*b + c).
func MulAddMont64(a, b, c int64) int64 {
	hi, lo := mul128(a, b)
	chi, clo := signExtend128(c)
	hi, lo = add128(hi, lo, chi, clo)
	return redc64(hi, lo)
}

// ToMont64 converts a canonical-range coefficient to Montgomery form
// (multiplies by R mod q).
func ToMont64(x int64) int64 { return MulMont64(x, MontRR64) }

// FromMont64 converts a Montgomery-form residue back to canonical form.
func FromMont64(x int64) int64 { return MulMont64(x, 1) }

// CMod reduces an arbitrary x into [0, m). Unlike CAdd64/CSub64 this is a
// full (division-based) reduction with no input-range precondition; keep it
// off secret-dependent paths and prefer the conditional fixups there.
func CMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
