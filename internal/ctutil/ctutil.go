// Package ctutil implements constant-time byte primitives: the equality
// check used for the final challenge-hash comparison in Verify, and a
// conditional move. The masked arithmetic in field and ringq does its
// conditional fixups with sign masks of its own and does not call CMov.
//
// Grounded on the reference implementation's ct_util.c (ct_equal, ct_cmov):
// an OR-of-XOR accumulator for equality, and a broadcast-mask XOR-swap for
// conditional move, both free of data-dependent branches.
package ctutil

// Equal reports whether a and b are byte-for-byte identical, in time
// depending only on len(a) (not on where they first differ). It returns
// false immediately, without scanning, if the lengths differ — differing
// lengths are themselves public information for Raccoon's one caller
// (comparing two fixed-size challenge hashes).
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var r byte
	for i := range a {
		r |= a[i] ^ b[i]
	}
	return r == 0
}

// CMov copies x into r when b is true, leaves r untouched when b is false,
// in either case touching every byte of r so the operation's time and
// memory-access pattern don't depend on b.
func CMov(r, x []byte, b bool) {
	var mask byte
	if b {
		mask = 0xFF
	}
	for i := range r {
		r[i] ^= mask & (x[i] ^ r[i])
	}
}
