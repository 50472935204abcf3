package racc

import (
	"bytes"
	"testing"

	"raccoon/mask"
	"raccoon/ringq"
	"raccoon/xof"
)

func testKeypair(t *testing.T, tag byte) (*Params, *PublicKey, *SecretKey) {
	t.Helper()
	p := Preset128()
	pk, sk, err := Keygen(&p, testDRBG(tag), mask.NewLFSRRNG(p.D))
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	return &p, pk, sk
}

func testMu(p *Params, msg []byte) []byte {
	tr := bytes.Repeat([]byte{0x17}, p.CRH)
	mu := make([]byte, p.CRH)
	xof.ChalMu(mu, tr, msg)
	return mu
}

func TestSignVerifyRoundTrip(t *testing.T) {
	p, pk, sk := testKeypair(t, 0)
	mu := testMu(p, []byte("abc"))

	sig := NewSignature(p)
	var st Stats
	if err := SignWithStats(p, sig, mu, sk, testDRBG(1), mask.NewLFSRRNG(p.D), &st); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if st.Attempts < 1 {
		t.Fatalf("stats not recorded: %+v", st)
	}
	if !Verify(p, sig, mu, pk) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifyRejectsWrongDigest(t *testing.T) {
	p, pk, sk := testKeypair(t, 2)
	mu := testMu(p, []byte("abc"))

	sig := NewSignature(p)
	if err := Sign(p, sig, mu, sk, testDRBG(3), mask.NewLFSRRNG(p.D)); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	mu2 := testMu(p, []byte("abd"))
	if Verify(p, sig, mu2, pk) {
		t.Fatal("signature accepted under a different digest")
	}
}

func TestVerifyRejectsTamperedChallenge(t *testing.T) {
	p, pk, sk := testKeypair(t, 4)
	mu := testMu(p, []byte("abc"))

	sig := NewSignature(p)
	if err := Sign(p, sig, mu, sk, testDRBG(5), mask.NewLFSRRNG(p.D)); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig.Ch[7] ^= 0x80
	if Verify(p, sig, mu, pk) {
		t.Fatal("signature accepted after challenge tamper")
	}
}

// Every signature the sign loop releases must satisfy the published norm
// bounds.
func TestSignRespectsBounds(t *testing.T) {
	p, pk, sk := testKeypair(t, 6)

	for i := 0; i < 3; i++ {
		mu := testMu(p, []byte{byte(i)})
		sig := NewSignature(p)
		var st Stats
		if err := SignWithStats(p, sig, mu, sk, testDRBG(byte(10+i)), mask.NewLFSRRNG(p.D), &st); err != nil {
			t.Fatalf("Sign: %v", err)
		}
		if st.HInf > p.BInfH() {
			t.Fatalf("hint infinity norm %d exceeds %d", st.HInf, p.BInfH())
		}
		if st.ZInf > p.BInf {
			t.Fatalf("z infinity norm %d exceeds %d", st.ZInf, p.BInf)
		}
		if st.L2Scaled > p.B22 {
			t.Fatalf("scaled L2 %d exceeds %d", st.L2Scaled, p.B22)
		}
		if !p.CheckBounds(sig.H, sig.Z) {
			t.Fatal("CheckBounds disagrees with the accepting sign loop")
		}
		if !Verify(p, sig, mu, pk) {
			t.Fatalf("signature %d rejected", i)
		}
	}
}

// Fixed-seed entropy and the deterministic mask generators must make the
// whole pipeline reproducible.
func TestKeygenDeterministicUnderDRBG(t *testing.T) {
	p := Preset128()
	pk1, sk1, err := Keygen(&p, testDRBG(9), mask.NewLFSRRNG(p.D))
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pk2, sk2, err := Keygen(&p, testDRBG(9), mask.NewLFSRRNG(p.D))
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	if !bytes.Equal(pk1.ASeed, pk2.ASeed) {
		t.Fatal("a_seed differs across identically seeded runs")
	}
	for i := range pk1.T {
		if pk1.T[i] != pk2.T[i] {
			t.Fatalf("pk.t[%d] differs across identically seeded runs", i)
		}
	}
	for i := range sk1.S {
		var a, b ringq.Poly
		decode(&a, sk1.S[i])
		decode(&b, sk2.S[i])
		if a != b {
			t.Fatalf("decoded secret %d differs across identically seeded runs", i)
		}
	}
}

// Refreshing a secret key's sharing must not change the signatures'
// validity (signing refreshes in place as a side effect).
func TestSigningTwiceWithSameKey(t *testing.T) {
	p, pk, sk := testKeypair(t, 12)

	for i := 0; i < 2; i++ {
		mu := testMu(p, []byte{0xEE, byte(i)})
		sig := NewSignature(p)
		if err := Sign(p, sig, mu, sk, testDRBG(byte(20+i)), mask.NewLFSRRNG(p.D)); err != nil {
			t.Fatalf("Sign %d: %v", i, err)
		}
		if !Verify(p, sig, mu, pk) {
			t.Fatalf("signature %d rejected", i)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	good := Preset128()
	if err := good.Validate(); err != nil {
		t.Fatalf("preset rejected: %v", err)
	}
	bad := good
	bad.D = 3
	if bad.Validate() == nil {
		t.Fatal("non-power-of-two share count accepted")
	}
	bad = good
	bad.NuW = 30
	if bad.Validate() == nil {
		t.Fatal("nu_w below the L2 scaling floor accepted")
	}
	bad = good
	bad.CRH = 31
	if bad.Validate() == nil {
		t.Fatal("crh != 2*kappa accepted")
	}
}

func TestPresetSizes(t *testing.T) {
	p := Preset128()
	if got := p.PKSize(); got != 2256 {
		t.Fatalf("PKSize = %d, want 2256", got)
	}
	if got := p.SKSize(); got != 14848 {
		t.Fatalf("SKSize = %d, want 14848", got)
	}
	if p.SigSize() <= p.CRH {
		t.Fatalf("SigSize = %d too small", p.SigSize())
	}
}
