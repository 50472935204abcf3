package keccak

// ShakeSum128 writes len(out) bytes of SHAKE128(data) into out.
func ShakeSum128(out, data []byte) {
	s := NewShake128()
	s.Absorb(data)
	s.Pad(PadSHAKE)
	s.Squeeze(out[:0], len(out))
}

// ShakeSum256 writes len(out) bytes of SHAKE256(data) into out.
func ShakeSum256(out, data []byte) {
	s := NewShake256()
	s.Absorb(data)
	s.Pad(PadSHAKE)
	s.Squeeze(out[:0], len(out))
}
