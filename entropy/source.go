// Package entropy abstracts the byte source Raccoon's keygen and sign
// operations draw from, so a deterministic KAT DRBG can stand in for the
// system CSPRNG without the core ever branching on which one is in use
// (spec §4.6, §9 "Entropy plugging": randombytes as a parameter, not a
// global, except where KAT reproducibility demands a process-wide one).
package entropy

import "crypto/rand"

// Source fills buf with fresh random bytes, returning an error only if the
// underlying generator itself failed (an EntropyFailure per spec §7 — the
// core treats this as fatal, not retryable).
type Source interface {
	Fill(buf []byte) error
}

// CryptoRand is the default, non-deterministic Source backed by the Go
// runtime's CSPRNG — the counterpart to the teacher's own random_seed.go,
// which likewise seeds from crypto/rand rather than rolling its own.
type CryptoRand struct{}

// Fill implements Source.
func (CryptoRand) Fill(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// Default is the package-level, non-deterministic Source most callers want.
var Default Source = CryptoRand{}
