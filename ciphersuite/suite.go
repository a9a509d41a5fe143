// Package ciphersuite is the static table of TLS 1.2 cipher suites this
// engine recognizes: their key-exchange algorithm, bulk cipher, and MAC,
// plus the derived key-material sizes the record layer and key-block
// derivation need.
package ciphersuite

import "github.com/vlet/tls12/cryptobackend"

// ID is a cipher suite's 16-bit wire code [rfc5246:A.5].
type ID uint16

const (
	TLS_RSA_WITH_NULL_SHA256      ID = 0x003B
	TLS_RSA_WITH_NULL_SHA         ID = 0x0002
	TLS_RSA_WITH_RC4_128_MD5      ID = 0x0004
	TLS_RSA_WITH_RC4_128_SHA      ID = 0x0005
	TLS_RSA_WITH_3DES_EDE_CBC_SHA ID = 0x000A
	TLS_RSA_WITH_AES_128_CBC_SHA  ID = 0x002F
)

// KeyExchange identifies how the premaster secret is established. This
// engine implements only RSA key exchange and every suite in the table
// uses it; the handshake code does not inspect this field.
type KeyExchange byte

const KeyExchangeRSA KeyExchange = 1

// BulkCipher identifies the record layer's bulk encryption algorithm
// [rfc5246:6.2.3].
type BulkCipher byte

const (
	BulkCipherNull BulkCipher = iota
	BulkCipherRC4128
	BulkCipherAES128CBC
	BulkCipher3DESEDECBC
)

// CipherType classifies the bulk cipher's protection shape, independent of
// which specific algorithm is in use.
type CipherType byte

const (
	CipherTypeStream CipherType = iota
	CipherTypeBlock
)

// Suite is everything the record layer and key-block derivation need to
// know about a negotiated cipher suite.
type Suite struct {
	ID          ID
	KeyExchange KeyExchange
	BulkCipher  BulkCipher
	CipherType  CipherType

	// EncKeyLength is the bulk cipher's key size in bytes; 0 for null.
	EncKeyLength int
	// BlockLength is the cipher's block size; 0 for stream/null ciphers.
	BlockLength int
	// RecordIVLength is the size of the explicit per-record IV prepended
	// to CBC ciphertexts [rfc5246:6.2.3.2]; 0 for stream/null ciphers.
	RecordIVLength int

	MAC       cryptobackend.MACAlgorithm
	MACLength int
}

var table = map[ID]*Suite{
	TLS_RSA_WITH_NULL_SHA256: {
		ID: TLS_RSA_WITH_NULL_SHA256, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipherNull, CipherType: CipherTypeStream,
		MAC: cryptobackend.MACSHA256, MACLength: 32,
	},
	TLS_RSA_WITH_NULL_SHA: {
		ID: TLS_RSA_WITH_NULL_SHA, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipherNull, CipherType: CipherTypeStream,
		MAC: cryptobackend.MACSHA1, MACLength: 20,
	},
	TLS_RSA_WITH_RC4_128_MD5: {
		ID: TLS_RSA_WITH_RC4_128_MD5, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipherRC4128, CipherType: CipherTypeStream,
		EncKeyLength: 16, MAC: cryptobackend.MACMD5, MACLength: 16,
	},
	TLS_RSA_WITH_RC4_128_SHA: {
		ID: TLS_RSA_WITH_RC4_128_SHA, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipherRC4128, CipherType: CipherTypeStream,
		EncKeyLength: 16, MAC: cryptobackend.MACSHA1, MACLength: 20,
	},
	TLS_RSA_WITH_3DES_EDE_CBC_SHA: {
		ID: TLS_RSA_WITH_3DES_EDE_CBC_SHA, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipher3DESEDECBC, CipherType: CipherTypeBlock,
		EncKeyLength: 24, BlockLength: 8, RecordIVLength: 8,
		MAC: cryptobackend.MACSHA1, MACLength: 20,
	},
	TLS_RSA_WITH_AES_128_CBC_SHA: {
		ID: TLS_RSA_WITH_AES_128_CBC_SHA, KeyExchange: KeyExchangeRSA,
		BulkCipher: BulkCipherAES128CBC, CipherType: CipherTypeBlock,
		EncKeyLength: 16, BlockLength: 16, RecordIVLength: 16,
		MAC: cryptobackend.MACSHA1, MACLength: 20,
	},
}

// Lookup returns the Suite for id, and ok=false if the engine does not
// recognize id. An unrecognized suite proposed by the server aborts the
// handshake with handshake_failure.
func Lookup(id ID) (*Suite, bool) {
	s, ok := table[id]
	return s, ok
}

// Null is the suite in force before any ChangeCipherSpec: no MAC, no
// encryption.
var Null = &Suite{BulkCipher: BulkCipherNull, CipherType: CipherTypeStream, MAC: cryptobackend.MACNull}
