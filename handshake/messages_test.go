package handshake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/tlsconst"
)

func TestClientHelloRoundTrip(t *testing.T) {
	msg := ClientHello{
		Version:            tlsconst.VersionTLS12,
		SessionID:          []byte{1, 2, 3},
		CipherSuites:       []ciphersuite.ID{ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, ciphersuite.TLS_RSA_WITH_RC4_128_SHA},
		CompressionMethods: []byte{byte(tlsconst.CompressionNull)},
		ServerName:         "example.com",
	}
	for i := range msg.Random {
		msg.Random[i] = byte(i)
	}

	body := msg.Write()
	var got ClientHello
	assert.NoError(t, got.Parse(body))
	assert.Equal(t, msg.Version, got.Version)
	assert.Equal(t, msg.Random, got.Random)
	assert.Equal(t, msg.SessionID, got.SessionID)
	assert.Equal(t, msg.CipherSuites, got.CipherSuites)
	assert.Equal(t, "example.com", got.ServerName)
}

func TestClientHelloWithoutSessionIDOrServerName(t *testing.T) {
	msg := ClientHello{
		Version:      tlsconst.VersionTLS12,
		CipherSuites: []ciphersuite.ID{ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA},
	}
	body := msg.Write()
	var got ClientHello
	assert.NoError(t, got.Parse(body))
	assert.Empty(t, got.SessionID)
	assert.Empty(t, got.ServerName)
}

func TestClientHelloRejectsMissingNullCompression(t *testing.T) {
	msg := ClientHello{
		Version:            tlsconst.VersionTLS12,
		CipherSuites:       []ciphersuite.ID{ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA},
		CompressionMethods: []byte{0x01},
	}
	body := msg.Write()
	var got ClientHello
	assert.ErrorIs(t, got.Parse(body), ErrClientHelloCompressionMethods)
}

func TestServerHelloRoundTrip(t *testing.T) {
	msg := ServerHello{
		Version:           tlsconst.VersionTLS12,
		SessionID:         []byte{9, 9, 9, 9},
		CipherSuite:       ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA,
		CompressionMethod: 0,
	}
	body := msg.Write()
	var got ServerHello
	assert.NoError(t, got.Parse(body))
	assert.Equal(t, msg, got)
}

func TestCertificateRoundTrip(t *testing.T) {
	msg := Certificate{DER: []byte("fake-der-bytes")}
	body := msg.Write()
	var got Certificate
	assert.NoError(t, got.Parse(body))
	assert.Equal(t, msg.DER, got.DER)
}

func TestCertificateRejectsEmptyChain(t *testing.T) {
	var got Certificate
	assert.ErrorIs(t, got.Parse([]byte{0x00, 0x00, 0x00}), ErrCertificateChainEmpty)
}

func TestServerHelloDoneRoundTrip(t *testing.T) {
	var msg ServerHelloDone
	body := msg.Write()
	assert.Empty(t, body)
	var got ServerHelloDone
	assert.NoError(t, got.Parse(body))
}

func TestClientKeyExchangeRoundTrip(t *testing.T) {
	msg := ClientKeyExchange{EncryptedPreMasterSecret: []byte{1, 2, 3, 4, 5}}
	body := msg.Write()
	var got ClientKeyExchange
	assert.NoError(t, got.Parse(body))
	assert.Equal(t, msg.EncryptedPreMasterSecret, got.EncryptedPreMasterSecret)
}

func TestFinishedRoundTrip(t *testing.T) {
	var msg Finished
	for i := range msg.VerifyData {
		msg.VerifyData[i] = byte(i + 1)
	}
	body := msg.Write()
	assert.Len(t, body, VerifyDataLength)
	var got Finished
	assert.NoError(t, got.Parse(body))
	assert.Equal(t, msg, got)
}

func TestFinishedRejectsWrongLength(t *testing.T) {
	var got Finished
	assert.ErrorIs(t, got.Parse([]byte{1, 2, 3}), ErrFinishedLength)
}

func TestWriteMessageAndParseHeaderAndBody(t *testing.T) {
	raw := WriteMessage(nil, tlsconst.HandshakeTypeFinished, []byte("twelve-byte!"))
	n, hdr, body, err := ParseHeaderAndBody(raw)
	assert.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, tlsconst.HandshakeTypeFinished, hdr.Type)
	assert.Equal(t, []byte("twelve-byte!"), body)
}

func TestParseHeaderAndBodyNeedsMoreBytes(t *testing.T) {
	raw := WriteMessage(nil, tlsconst.HandshakeTypeServerHello, []byte("0123456789"))
	n, _, _, err := ParseHeaderAndBody(raw[:len(raw)-3])
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCipherSuitesRoundTrip(t *testing.T) {
	suites := []ciphersuite.ID{ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA, ciphersuite.TLS_RSA_WITH_NULL_SHA}
	body := WriteCipherSuites(nil, suites)
	got, err := ParseCipherSuites(body[2:])
	assert.NoError(t, err)
	assert.Equal(t, suites, got)
}
