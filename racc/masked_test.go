package racc

import (
	"errors"
	"testing"

	"raccoon/entropy"
	"raccoon/field"
	"raccoon/mask"
	"raccoon/ringq"
)

func testDRBG(tag byte) *entropy.AESDRBG {
	var seed [48]byte
	for i := range seed {
		seed[i] = byte(i) ^ tag
	}
	return entropy.NewAESDRBG(seed, [48]byte{}, false)
}

func TestZeroEncodingSumsToZero(t *testing.T) {
	mrg := mask.NewLFSRRNG(4)
	z := make([]ringq.Poly, 4)
	zeroEncoding(z, mrg)

	var sum ringq.Poly
	decode(&sum, z)
	for i, v := range sum {
		if v != 0 {
			t.Fatalf("zero encoding decodes to %d at coefficient %d", v, i)
		}
	}
	// shares must not themselves be zero
	if z[0] == (ringq.Poly{}) || z[1] == (ringq.Poly{}) {
		t.Fatal("zero encoding produced all-zero shares")
	}
}

func TestZeroEncodingSingleShare(t *testing.T) {
	z := []ringq.Poly{{1, 2, 3}}
	zeroEncoding(z, mask.NewLFSRRNG(1))
	if z[0] != (ringq.Poly{}) {
		t.Fatal("d=1 zero encoding must be the zero polynomial")
	}
}

// The share sum mod q must be identical before and after any sequence of
// Refresh calls.
func TestRefreshPreservesDecodedValue(t *testing.T) {
	mrg := mask.NewLFSRRNG(4)
	x := make([]ringq.Poly, 4)
	for j := range x {
		mrg.Poly(j%3, &x[j])
	}

	var before ringq.Poly
	decode(&before, x)

	for round := 0; round < 5; round++ {
		refresh(x, mrg)
	}

	var after ringq.Poly
	decode(&after, x)
	if before != after {
		t.Fatal("refresh changed the decoded value")
	}
}

func TestAddRepNoiseKeepsSharesCanonical(t *testing.T) {
	p := Preset128()
	mrg := mask.NewLFSRRNG(p.D)
	v := make([]ringq.Poly, p.D)
	zeroEncoding(v, mrg)
	if err := addRepNoise(v, 0, p.UW, &p, testDRBG(0), mrg); err != nil {
		t.Fatalf("addRepNoise: %v", err)
	}
	for j := range v {
		for i, c := range v[j] {
			if c < 0 || c >= field.Q64 {
				t.Fatalf("share %d coefficient %d left canonical range: %d", j, i, c)
			}
		}
	}
}

type failingSource struct{}

func (failingSource) Fill([]byte) error { return errShort }

var errShort = &shortErr{}

type shortErr struct{}

func (*shortErr) Error() string { return "short read" }

func TestAddRepNoiseSurfacesEntropyFailure(t *testing.T) {
	p := Preset128()
	v := make([]ringq.Poly, p.D)
	err := addRepNoise(v, 0, p.UT, &p, failingSource{}, mask.NewLFSRRNG(p.D))
	if !errors.Is(err, ErrEntropy) {
		t.Fatalf("expected ErrEntropy, got %v", err)
	}
}
