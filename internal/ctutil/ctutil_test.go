package ctutil

import "testing"

func TestEqual(t *testing.T) {
	a := []byte("raccoon-challenge-hash-0123456789")
	b := append([]byte(nil), a...)
	if !Equal(a, b) {
		t.Fatal("identical slices reported unequal")
	}
	b[10] ^= 0x01
	if Equal(a, b) {
		t.Fatal("differing slices reported equal")
	}
	if Equal(a, b[:len(b)-1]) {
		t.Fatal("differing lengths reported equal")
	}
}

func TestCMov(t *testing.T) {
	r := []byte{1, 2, 3, 4}
	x := []byte{9, 9, 9, 9}

	CMov(r, x, false)
	for i, v := range r {
		if v != byte(i+1) {
			t.Fatalf("CMov(false) modified r: %v", r)
		}
	}

	CMov(r, x, true)
	for _, v := range r {
		if v != 9 {
			t.Fatalf("CMov(true) did not copy x: %v", r)
		}
	}
}
