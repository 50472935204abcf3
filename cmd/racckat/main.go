// racckat reproduces the known-answer flow: seed the deterministic DRBG
// with bytes 0..47, generate a keypair, sign "abc", verify, corrupt one
// byte and expect a reject, printing a 16-byte SHAKE256 checksum of every
// serialized artifact along the way.
package main

import (
	"bytes"
	"fmt"
	"log"

	"raccoon/entropy"
	"raccoon/keccak"
	"raccoon/racc"
	"raccoon/signverify"
)

func chk(label string, data []byte) {
	md := make([]byte, 16)
	keccak.ShakeSum256(md, data)
	fmt.Printf("%s: %x (%d)\n", label, md, len(data))
}

func main() {
	p := racc.Preset128()

	var seed [48]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	drbg := entropy.NewAESDRBG(seed, [48]byte{}, false)

	fmt.Printf("pk_sz\t= %d\n", p.PKSize())
	fmt.Printf("sk_sz\t= %d\n", p.SKSize())
	fmt.Printf("sig_sz\t= %d\n", p.SigSize())

	pkB, skB, err := signverify.KeyGen(&p, drbg)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	chk("raccoon-128.pk", pkB)
	chk("raccoon-128.sk", skB)

	msg := []byte("abc")
	sm, err := signverify.SignMessage(&p, skB, msg, drbg)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	chk("raccoon-128.sm", sm)

	fail := 0
	m2, err := signverify.Open(&p, pkB, sm)
	if err != nil || !bytes.Equal(m2, msg) {
		fail++
	}

	sm[123]++ // corrupt it, expect a reject
	if _, err := signverify.Open(&p, pkB, sm); err == nil {
		fail++
	}
	fmt.Printf("verify fail= %d\n", fail)
}
