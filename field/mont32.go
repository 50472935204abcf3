package field

// Q1, Q2 are the two CRT limbs of Q64: Q1 = 2^24-2^18+1, Q2 = 2^25-2^18+1,
// Q64 == Q1*Q2. The dual-32-bit backend (ringq's CRT path) carries every
// polynomial as a pair of mod-Q1/mod-Q2 residues instead of one mod-Q64
// value, trading one wide 64-bit multiply for two narrow 32-bit ones.
const (
	Q1 int32 = 16515073
	Q2 int32 = 33292289
)

// Montgomery constants for Q1: R1 = 2^32 mod Q1, RR1 = R1^2 mod Q1,
// RRR1 = R1^3 mod Q1 (one extra R factor, used when a value needs to pass
// through three Montgomery multiplies before landing in canonical form),
// QI1 = (-Q1)^-1 mod 2^32.
const (
	MontR1   int32 = 1048316
	MontRR1  int32 = 3933217
	MontRRR1 int32 = 2096954
	MontQI1  int32 = 16515071
)

// Montgomery constants for Q2, defined analogously.
const (
	MontR2   int32 = 262015
	MontRR2  int32 = 3160307
	MontRRR2 int32 = 2026597
	MontQI2  int32 = 33292287
)

// CRT reconstruction constants. D2Q1/D2Q2 carry the inverse limb factors
// q2^-1 mod q1 / q1^-1 mod q2 pre-scaled by two REDCs' worth of 2^32;
// JoinCRT consumes them. C4Q1/C4Q2 additionally fold the 1/n inverse-NTT
// scaling and four REDCs, for a join fused directly onto a 32-bit
// Montgomery INTT pipeline; the lattigo-backed CRT path emits canonical
// limbs instead, so only the D2 pair is consulted here.
const (
	C4Q1 int32 = 1048477
	C4Q2 int32 = 15632846
	D2Q1 int32 = 4127728
	D2Q2 int32 = 32801027
)

// Add32 returns x+y unreduced.
func Add32(x, y int32) int32 { return x + y }

// Sub32 returns x-y unreduced.
func Sub32(x, y int32) int32 { return x - y }

// CAdd32 conditionally adds m when x is negative. Requires -m <= x < m.
func CAdd32(x, m int32) int32 {
	t := x >> 31
	return x + (t & m)
}

// CSub32 conditionally subtracts m when x >= m. Requires 0 <= x < 2*m.
func CSub32(x, m int32) int32 {
	t := x - m
	return t + ((t >> 31) & m)
}

// redc32 is the shared Montgomery reduction body for both limbs: given
// x with |x| bounded so that x*qi and the following shift stay inside an
// int64, and the limb's own (modulus, qinv) pair, returns x*2^-32 mod m.
func redc32(x int64, m, qi int32) int32 {
	r := int32(x * int64(qi))
	return int32((x + int64(r)*int64(m)) >> 32)
}

// Redc1 reduces a 64-bit product modulo Q1 (|x| < 2^54).
func Redc1(x int64) int32 { return redc32(x, Q1, MontQI1) }

// Redc2 reduces a 64-bit product modulo Q2 (|x| < 2^55).
func Redc2(x int64) int32 { return redc32(x, Q2, MontQI2) }

// MulQ1 computes redc1(x*y).
func MulQ1(x, y int32) int32 { return Redc1(int64(x) * int64(y)) }

// MulQ2 computes redc2(x*y).
func MulQ2(x, y int32) int32 { return Redc2(int64(x) * int64(y)) }

// MulAddQ1 computes redc1(x*y + z).
func MulAddQ1(x, y, z int32) int32 { return Redc1(int64(x)*int64(y) + int64(z)) }

// MulAddQ2 computes redc2(x*y + z).
func MulAddQ2(x, y, z int32) int32 { return Redc2(int64(x)*int64(y) + int64(z)) }

// ToMontQ1 lifts a canonical-range Q1 residue into Montgomery form.
func ToMontQ1(x int32) int32 { return MulQ1(x, MontRR1) }

// ToMontQ2 lifts a canonical-range Q2 residue into Montgomery form.
func ToMontQ2(x int32) int32 { return MulQ2(x, MontRR2) }

// FromMontQ1 lowers a Montgomery-form Q1 residue back to canonical form.
func FromMontQ1(x int32) int32 { return MulQ1(x, 1) }

// FromMontQ2 lowers a Montgomery-form Q2 residue back to canonical form.
func FromMontQ2(x int32) int32 { return MulQ2(x, 1) }

// SplitCRT maps a mod-Q64 representative (any sign) into its two CRT
// residues, each in the canonical range of its limb.
func SplitCRT(x int64) (v1, v2 int32) {
	return int32(CMod(x, int64(Q1))), int32(CMod(x, int64(Q2)))
}

// JoinCRT reconstructs a single coefficient in [0, Q64) from its two CRT
// residues v1 (mod Q1) and v2 (mod Q2):
//
//	x = q2*(v1 * q2^-1 mod q1) + q1*(v2 * q1^-1 mod q2)
//
// The per-limb inverse factors come from the reference's two-REDC
// constants: D2Q1 = q2^-1 * 2^64 mod q1, so one Montgomery multiply
// followed by one bare REDC strips both 2^32 factors and leaves exactly
// v1 * q2^-1 mod q1 (and symmetrically for the second limb).
func JoinCRT(v1, v2 int32) int64 {
	a1 := CAdd32(Redc1(int64(MulQ1(v1, D2Q1))), Q1)
	a2 := CAdd32(Redc2(int64(MulQ2(v2, D2Q2))), Q2)
	x := int64(Q2)*int64(a1) + int64(Q1)*int64(a2)
	return CSub64(x, Q64)
}
