package cryptobackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRFIsDeterministicAndLengthExact(t *testing.T) {
	b := Stdlib()
	secret := []byte("secret")
	seed := []byte("seed")
	out := b.PRF(secret, "test label", seed, 77)
	assert.Len(t, out, 77)

	again := b.PRF(secret, "test label", seed, 77)
	assert.Equal(t, out, again)

	differentLabel := b.PRF(secret, "other label", seed, 77)
	assert.NotEqual(t, out, differentLabel)
}

func TestPRFZeroLengthIsEmptyNotNil(t *testing.T) {
	out := Stdlib().PRF([]byte("s"), "l", []byte("seed"), 0)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestHMACRoundTripsThroughMACSize(t *testing.T) {
	b := Stdlib()
	for _, alg := range []MACAlgorithm{MACMD5, MACSHA1, MACSHA256} {
		mac := b.HMAC(alg, []byte("key"), []byte("data"))
		assert.Len(t, mac, b.MACSize(alg))
	}
}

func TestAESCBCRoundTrip(t *testing.T) {
	b := Stdlib()
	key := make([]byte, 16)
	iv := make([]byte, 16)
	plaintext := make([]byte, 32)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	ciphertext := b.AESCBCEncrypt(key, iv, plaintext)
	got := b.AESCBCDecrypt(key, iv, ciphertext)
	assert.Equal(t, plaintext, got)
}

func TestRC4KeystreamIsSelfInverse(t *testing.T) {
	b := Stdlib()
	key := []byte("0123456789abcdef")
	plaintext := []byte("round and round it goes")
	ciphertext := b.RC4Keystream(key, plaintext)
	got := b.RC4Keystream(key, ciphertext)
	assert.Equal(t, plaintext, got)
}
