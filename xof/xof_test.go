package xof

import (
	"bytes"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"

	"raccoon/field"
	"raccoon/ringq"
)

func TestSampleQRangeAndDeterminism(t *testing.T) {
	hdr := Header(TagExpandA, 1, 2, 0)
	seed := append(hdr[:], bytes.Repeat([]byte{0x55}, 16)...)

	var a, b ringq.Poly
	SampleQ(&a, seed)
	SampleQ(&b, seed)
	if a != b {
		t.Fatal("SampleQ is not deterministic in its seed")
	}
	for i, v := range a {
		if v < 0 || v >= field.Q64 {
			t.Fatalf("coefficient %d out of range: %d", i, v)
		}
	}

	seed[9] ^= 1
	SampleQ(&b, seed)
	if a == b {
		t.Fatal("SampleQ ignored a seed change")
	}
}

func TestSampleUCenteredRange(t *testing.T) {
	const bits = 41
	hdr := Header(TagRepNoise, 0, 1, 2)
	seed := append(hdr[:], bytes.Repeat([]byte{0xA7}, 16)...)

	var p ringq.Poly
	SampleU(&p, bits, seed)

	lim := int64(1) << (bits - 1)
	sawNeg := false
	for i, v := range p {
		if v < 0 || v >= field.Q64 {
			t.Fatalf("coefficient %d not in [0, q): %d", i, v)
		}
		c := v
		if c > field.Q64/2 {
			c -= field.Q64
			sawNeg = true
		}
		if c < -lim || c >= lim {
			t.Fatalf("coefficient %d centered to %d, outside +-2^%d", i, c, bits-1)
		}
	}
	if !sawNeg {
		t.Fatal("no negative coefficients in 512 draws; sign centering looks broken")
	}
}

func TestChalMuMatchesShake256(t *testing.T) {
	tr := bytes.Repeat([]byte{0x31}, 32)
	msg := []byte("abc")

	mu := make([]byte, 32)
	ChalMu(mu, tr, msg)

	want := make([]byte, 32)
	xsha3.ShakeSum256(want, append(append([]byte{}, tr...), msg...))
	if !bytes.Equal(mu, want) {
		t.Fatalf("ChalMu = %x, want SHAKE256(tr||msg) = %x", mu, want)
	}
}

func TestChalHashSensitivity(t *testing.T) {
	mu := bytes.Repeat([]byte{0x09}, 32)
	w := make([]ringq.Poly, 3)
	for i := range w {
		for j := range w[i] {
			w[i][j] = int64((i + j) % 31)
		}
	}

	ch1 := make([]byte, 32)
	ChalHash(ch1, mu, w, 1)

	w[2][511] ^= 1
	ch2 := make([]byte, 32)
	ChalHash(ch2, mu, w, 1)
	if bytes.Equal(ch1, ch2) {
		t.Fatal("ChalHash ignored a w coefficient change")
	}
}

// Scenario: an all-zero challenge hash still expands to exactly omega
// nonzero coefficients, each +-1.
func TestChalPolyExactWeight(t *testing.T) {
	const omega = 19
	ch := make([]byte, 32)

	var cp ringq.Poly
	ChalPoly(&cp, ch, omega)

	nonzero := 0
	for i, v := range cp {
		switch v {
		case 0:
		case 1, -1:
			nonzero++
		default:
			t.Fatalf("coefficient %d is %d, want -1, 0 or +1", i, v)
		}
	}
	if nonzero != omega {
		t.Fatalf("Hamming weight %d, want %d", nonzero, omega)
	}
}

func TestChalPolyDeterministic(t *testing.T) {
	ch := bytes.Repeat([]byte{0xC4}, 32)
	var a, b ringq.Poly
	ChalPoly(&a, ch, 19)
	ChalPoly(&b, ch, 19)
	if a != b {
		t.Fatal("ChalPoly not deterministic in ch")
	}
}
