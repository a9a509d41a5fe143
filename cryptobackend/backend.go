// Package cryptobackend is the sole bridge between the protocol engine and
// concrete cryptography: randomness, the TLS 1.2 PRF, RSA key-exchange
// primitives, and the HMAC / block-cipher / stream-cipher primitives used
// by the record layer's protection step. The engine never calls
// crypto/... packages directly outside this package, so a caller that
// needs a different backend (an HSM, a FIPS module) only has to satisfy
// this interface.
package cryptobackend

import (
	"crypto/rsa"
	"crypto/x509"
)

// MACAlgorithm identifies the HMAC hash used by a cipher suite's MAC.
type MACAlgorithm byte

const (
	MACNull MACAlgorithm = iota
	MACMD5
	MACSHA1
	MACSHA256
)

// Backend is the crypto backend contract: everything the record layer and
// handshake layer need that is not itself protocol logic.
type Backend interface {
	// Random returns n cryptographically strong random bytes.
	Random(n int) []byte

	// PRF is the TLS 1.2 pseudo-random function: P_SHA256(secret, label||seed)
	// truncated to n bytes.
	PRF(secret []byte, label string, seed []byte, n int) []byte

	// TranscriptHash is SHA-256, used to hash the handshake transcript for
	// Finished verify_data computation.
	TranscriptHash(data []byte) [32]byte

	// HMAC computes the MAC algorithm's HMAC of data under key.
	HMAC(alg MACAlgorithm, key, data []byte) []byte
	// MACSize returns the output length of alg in bytes.
	MACSize(alg MACAlgorithm) int

	// CertPublicKey parses a DER-encoded X.509 certificate and extracts its
	// RSA public key.
	CertPublicKey(der []byte) (*rsa.PublicKey, error)
	// RSAEncrypt is RSAES-PKCS1-v1_5 encryption under pub.
	RSAEncrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error)
	// RSADecrypt is RSAES-PKCS1-v1_5 decryption under priv.
	RSADecrypt(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error)

	// AESCBCEncrypt/AESCBCDecrypt run AES in CBC mode and return the result
	// in a newly allocated slice; iv is consumed but not mutated,
	// plaintext/ciphertext length must be a multiple of the AES block size.
	AESCBCEncrypt(key, iv, plaintext []byte) []byte
	AESCBCDecrypt(key, iv, ciphertext []byte) []byte

	// TripleDESCBCEncrypt/TripleDESCBCDecrypt run 3DES (EDE, 24-byte key)
	// in CBC mode, as required by TLS_RSA_WITH_3DES_EDE_CBC_SHA.
	TripleDESCBCEncrypt(key, iv, plaintext []byte) []byte
	TripleDESCBCDecrypt(key, iv, ciphertext []byte) []byte

	// RC4Keystream XORs data with the RC4 keystream derived from key; RC4
	// is its own inverse, so this serves both encryption and decryption.
	RC4Keystream(key, data []byte) []byte
}

// Stdlib returns the production Backend implementation, built entirely on
// the Go standard library's crypto/... packages.
func Stdlib() Backend { return stdlibBackend{} }

type stdlibBackend struct{}

func (stdlibBackend) CertPublicKey(der []byte) (*rsa.PublicKey, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errNotRSAKey
	}
	return pub, nil
}
