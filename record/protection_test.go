package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/cryptobackend"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/tlsrand"
)

func testKeys(macLen, encLen int) DirectionKeys {
	mac := make([]byte, macLen)
	for i := range mac {
		mac[i] = byte(i + 1)
	}
	enc := make([]byte, encLen)
	for i := range enc {
		enc[i] = byte(i + 100)
	}
	return DirectionKeys{MACKey: mac, EncKey: enc}
}

func protectorFor(t *testing.T, id ciphersuite.ID) Protector {
	suite, ok := ciphersuite.Lookup(id)
	assert.True(t, ok)
	return Protector{
		Suite:   suite,
		Keys:    testKeys(suite.MACLength, suite.EncKeyLength),
		Backend: cryptobackend.Stdlib(),
	}
}

func TestNullProtectorIsIdentity(t *testing.T) {
	p := NullProtector(cryptobackend.Stdlib())
	plaintext := []byte("not protected yet")
	sealed := p.Seal(tlsrand.FixedRand(), 0, tlsconst.ContentTypeHandshake, tlsconst.VersionTLS12, plaintext)
	assert.Equal(t, plaintext, sealed)
	opened, err := p.Open(0, tlsconst.ContentTypeHandshake, tlsconst.VersionTLS12, sealed)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestSealOpenRoundTripPerSuite(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	suites := []ciphersuite.ID{
		ciphersuite.TLS_RSA_WITH_NULL_SHA256,
		ciphersuite.TLS_RSA_WITH_RC4_128_SHA,
		ciphersuite.TLS_RSA_WITH_RC4_128_MD5,
		ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA,
		ciphersuite.TLS_RSA_WITH_3DES_EDE_CBC_SHA,
	}
	for _, id := range suites {
		p := protectorFor(t, id)
		sealed := p.Seal(tlsrand.CryptoRand(), 7, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, plaintext)
		opened, err := p.Open(7, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, sealed)
		assert.NoError(t, err, "suite %#04x", uint16(id))
		assert.Equal(t, plaintext, opened, "suite %#04x", uint16(id))
	}
}

func TestOpenRejectsWrongSequenceNumber(t *testing.T) {
	p := protectorFor(t, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA)
	sealed := p.Seal(tlsrand.CryptoRand(), 3, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, []byte("ping"))
	_, err := p.Open(4, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, sealed)
	assert.Error(t, err)
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	p := protectorFor(t, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA)
	sealed := p.Seal(tlsrand.CryptoRand(), 0, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, []byte("ping"))
	sealed[len(sealed)-1] ^= 0xFF
	_, err := p.Open(0, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, sealed)
	assert.Error(t, err)
}

func TestCBCRecordsCarryAFreshIVEachTime(t *testing.T) {
	p := protectorFor(t, ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA)
	a := p.Seal(tlsrand.CryptoRand(), 0, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, []byte("same plaintext"))
	b := p.Seal(tlsrand.CryptoRand(), 1, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, []byte("same plaintext"))
	ivLen := p.Suite.RecordIVLength
	assert.NotEqual(t, a[:ivLen], b[:ivLen])
}
