// Package tlsrand abstracts the source of randomness used for nonces,
// random fields and premaster-secret padding. Tests substitute a fixed
// generator so handshake transcripts are reproducible.
package tlsrand

import "crypto/rand"

type Rand interface {
	Read(data []byte)
}

type cryptoRand struct{}

func (cryptoRand) Read(data []byte) {
	if _, err := rand.Read(data); err != nil {
		panic("tls: failed to read from crypto/rand: " + err.Error())
	}
}

// CryptoRand returns the production randomness source, backed by
// crypto/rand.
func CryptoRand() Rand { return cryptoRand{} }

// fixedRand produces deterministic bytes for tests: every call fills the
// buffer with 0, 1, 2, ... (wrapping at 256), so exact wire bytes can be
// asserted without faking a constant value that would mask length bugs.
type fixedRand struct{}

func (fixedRand) Read(data []byte) {
	for i := range data {
		data[i] = byte(i)
	}
}

// FixedRand returns a deterministic generator for use in tests.
func FixedRand() Rand { return fixedRand{} }
