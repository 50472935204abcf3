package entropy

import (
	"crypto/aes"
	"fmt"
)

// AESDRBG is the deterministic AES-256-CTR DRBG used by the NIST
// Known-Answer-Test harness in place of a physical entropy source (spec
// §4.6). It is grounded exactly on the reference's util/nist_random.c:
// a 128-bit big-endian counter encrypted under AES-256-ECB to produce an
// output stream, reseeded after every request (and during construction) by
// encrypting three *fresh* counter blocks — never the caller-visible
// output — into a new (key, counter) pair, optionally XORed with extra
// input. This is the NIST SP 800-90A CTR_DRBG construction without a
// derivation function, fixed to AES-256 and a 384-bit (key||V) state.
type AESDRBG struct {
	key [32]byte
	ctr [16]byte
}

// NewAESDRBG constructs a DRBG seeded from a 48-byte entropy input,
// optionally XOR-combined with a 48-byte personalization string. Unlike
// the NIST API it takes no security-strength argument.
func NewAESDRBG(entropyInput, personalization [48]byte, havePersonalization bool) *AESDRBG {
	seed := entropyInput
	if havePersonalization {
		for i := range seed {
			seed[i] ^= personalization[i]
		}
	}
	d := &AESDRBG{}
	d.update(&seed, true)
	return d
}

// incCounter increments the 128-bit big-endian counter in place.
func incCounter(ctr *[16]byte) {
	x := uint32(1)
	for i := 15; i >= 0; i-- {
		x += uint32(ctr[i])
		ctr[i] = byte(x)
		x >>= 8
	}
}

// encryptBlock AES-256-ECB-encrypts one 16-byte block under the DRBG's
// current key.
func (d *AESDRBG) encryptBlock(dst, src []byte) {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		panic(fmt.Sprintf("entropy: aes.NewCipher: %v", err)) // key is always 32 bytes
	}
	block.Encrypt(dst, src)
}

// update advances (key, ctr) by encrypting three fresh counter blocks and
// optionally XORing the result with 48 bytes of additional input, matching
// aesdrbg_update. hasInput selects whether input is meaningful (Go has no
// null-pointer equivalent for a value parameter).
func (d *AESDRBG) update(input *[48]byte, hasInput bool) {
	var tmp [48]byte
	for i := 0; i < 48; i += 16 {
		incCounter(&d.ctr)
		d.encryptBlock(tmp[i:i+16], d.ctr[:])
	}
	if hasInput {
		for i := range tmp {
			tmp[i] ^= input[i]
		}
	}
	copy(d.key[:], tmp[:32])
	copy(d.ctr[:], tmp[32:48])
}

// Fill implements Source: emits len(buf) bytes of AES-256-CTR keystream,
// then reseeds via update(nil) exactly as aes256ctr_xof does after every
// request.
func (d *AESDRBG) Fill(buf []byte) error {
	var block [16]byte
	for len(buf) > 0 {
		incCounter(&d.ctr)
		d.encryptBlock(block[:], d.ctr[:])
		n := copy(buf, block[:])
		buf = buf[n:]
	}
	d.update(nil, false)
	return nil
}
