package racc

import (
	"testing"

	"raccoon/mask"
)

func BenchmarkKeygen(b *testing.B) {
	p := Preset128()
	es := testDRBG(0)
	for i := 0; i < b.N; i++ {
		if _, _, err := Keygen(&p, es, mask.NewLFSRRNG(p.D)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	p := Preset128()
	es := testDRBG(1)
	_, sk, err := Keygen(&p, es, mask.NewLFSRRNG(p.D))
	if err != nil {
		b.Fatal(err)
	}
	mu := make([]byte, p.CRH)
	sig := NewSignature(&p)
	mrg := mask.NewLFSRRNG(p.D)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mu[0] = byte(i)
		if err := Sign(&p, sig, mu, sk, es, mrg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	p := Preset128()
	es := testDRBG(2)
	pk, sk, err := Keygen(&p, es, mask.NewLFSRRNG(p.D))
	if err != nil {
		b.Fatal(err)
	}
	mu := make([]byte, p.CRH)
	sig := NewSignature(&p)
	if err := Sign(&p, sig, mu, sk, es, mask.NewLFSRRNG(p.D)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Verify(&p, sig, mu, pk) {
			b.Fatal("verify rejected")
		}
	}
}
