// Package keccak implements the Keccak-f[1600] permutation and a
// byte-oriented sponge construction (SHA3/SHAKE padding) on top of it.
//
// This is the bottom layer of the Raccoon core's XOF stack: every sampler,
// hash, and domain-separated expansion in package xof is built by absorbing
// and squeezing through a Sponge from this package. Nothing here is
// Raccoon-specific.
package keccak

import "math/bits"

// rc holds the 24 round constants used by the iota step.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc and piln drive the fused rho+pi step: lane piln[i] receives the
// previous lane rotated by rotc[i], walking the pi permutation's single
// 24-lane cycle starting from lane 1.
var rotc = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// permute applies the 24-round Keccak-f[1600] permutation in place to a
// 1600-bit state represented as 25 little-endian lanes.
func permute(a *[25]uint64) {
	var bc [5]uint64

	for r := 0; r < 24; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			d := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= d
			}
		}

		// rho and pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			a[j], t = bits.RotateLeft64(t, int(rotc[i])), a[j]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= bc[(i+2)%5] &^ bc[(i+1)%5]
			}
		}

		// iota
		a[0] ^= rc[r]
	}
}
