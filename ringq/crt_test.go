package ringq

import (
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"

	"raccoon/field"
)

// TestCRTMatchesHandRolledNTT cross-checks the lattigo-backed CRT
// multiplication path against the hand-rolled 64-bit Montgomery NTT on
// identical inputs — the two arithmetic backends must agree on every
// product, since both claim to compute the same negacyclic ring
// multiplication.
func TestCRTMatchesHandRolledNTT(t *testing.T) {
	a := samplePoly(101)
	b := samplePoly(202)

	var want Poly
	want.MulQ(&a, &b)

	got, err := MulCRT(&a, &b)
	if err != nil {
		t.Fatalf("MulCRT: %v", err)
	}
	for i := 0; i < N; i++ {
		gw := field.CMod(want[i], field.Q64)
		gg := field.CMod(got[i], field.Q64)
		if gw != gg {
			t.Fatalf("crt/ntt mismatch at %d: ntt=%d crt=%d", i, gw, gg)
		}
	}
}

// TestCRTAgainstLattigoUniform draws a random small polynomial through
// lattigo's own keyed PRNG (the same utility the teacher repository uses
// to seed reproducible ring samples) and checks that splitting it into CRT
// limbs and rejoining is the identity.
func TestCRTAgainstLattigoUniform(t *testing.T) {
	crtRingsOnce.Do(buildCRTRings)
	if crtRingsErr != nil {
		t.Fatalf("build rings: %v", crtRingsErr)
	}
	prng, err := utils.NewKeyedPRNG([]byte("ringq-crt-roundtrip-seed"))
	if err != nil {
		t.Fatalf("NewKeyedPRNG: %v", err)
	}
	// 12289 = 12*1024 + 1 is prime and 1 mod 2N, as lattigo's NewRing needs
	small, err := ring.NewRing(N, []uint64{12289})
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	rp := ring.NewUniformSampler(prng, small).ReadNew()

	var a Poly
	for i := 0; i < N; i++ {
		v := int64(rp.Coeffs[0][i])
		if v > 6144 {
			v -= 12289
		}
		a[i] = v
	}

	limbs, err := a.ToCRT()
	if err != nil {
		t.Fatalf("ToCRT: %v", err)
	}
	back := FromCRT(limbs)
	for i := 0; i < N; i++ {
		if back[i] != a[i] {
			t.Fatalf("crt split/join mismatch at %d: got %d want %d", i, back[i], a[i])
		}
	}
}
