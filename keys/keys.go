// Package keys derives the master secret, per-direction key block, and
// Finished verify_data from a premaster secret and the handshake
// transcript, per the TLS 1.2 PRF [rfc5246:6.3, 8.1].
package keys

import (
	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/cryptobackend"
	"github.com/vlet/tls12/record"
)

const MasterSecretLength = 48

const (
	labelMasterSecret  = "master secret"
	labelKeyExpansion  = "key expansion"
	labelClientFinished = "client finished"
	labelServerFinished = "server finished"
)

// ComputeMasterSecret derives the 48-byte master secret from the
// premaster secret and both hello randoms [rfc5246:8.1].
func ComputeMasterSecret(backend cryptobackend.Backend, preMasterSecret, clientRandom, serverRandom []byte) [MasterSecretLength]byte {
	seed := make([]byte, 0, len(clientRandom)+len(serverRandom))
	seed = append(seed, clientRandom...)
	seed = append(seed, serverRandom...)
	out := backend.PRF(preMasterSecret, labelMasterSecret, seed, MasterSecretLength)
	var result [MasterSecretLength]byte
	copy(result[:], out)
	return result
}

// KeyBlock is the six derived byte strings split from the PRF's key
// expansion output, in the fixed order required by [rfc5246:6.3].
type KeyBlock struct {
	ClientWriteMACKey []byte
	ServerWriteMACKey []byte
	ClientWriteKey    []byte
	ServerWriteKey    []byte
	ClientWriteIV     []byte
	ServerWriteIV     []byte
}

// ComputeKeyBlock derives and splits the key block for suite, given the
// master secret and both hello randoms. Seed order is
// server_random||client_random, the reverse of the master-secret seed
// [rfc5246:6.3].
func ComputeKeyBlock(backend cryptobackend.Backend, suite *ciphersuite.Suite, masterSecret, clientRandom, serverRandom []byte) KeyBlock {
	macKeyLen := backend.MACSize(suite.MAC)
	encKeyLen := suite.EncKeyLength
	fixedIVLen := 0 // TLS 1.2 CBC suites use an explicit per-record IV, not a fixed one

	total := 2*macKeyLen + 2*encKeyLen + 2*fixedIVLen

	seed := make([]byte, 0, len(serverRandom)+len(clientRandom))
	seed = append(seed, serverRandom...)
	seed = append(seed, clientRandom...)
	block := backend.PRF(masterSecret, labelKeyExpansion, seed, total)

	var kb KeyBlock
	offset := 0
	kb.ClientWriteMACKey, offset = block[offset:offset+macKeyLen], offset+macKeyLen
	kb.ServerWriteMACKey, offset = block[offset:offset+macKeyLen], offset+macKeyLen
	kb.ClientWriteKey, offset = block[offset:offset+encKeyLen], offset+encKeyLen
	kb.ServerWriteKey, offset = block[offset:offset+encKeyLen], offset+encKeyLen
	kb.ClientWriteIV, offset = block[offset:offset+fixedIVLen], offset+fixedIVLen
	kb.ServerWriteIV, _ = block[offset:offset+fixedIVLen], offset+fixedIVLen
	return kb
}

// ClientKeys and ServerKeys project a KeyBlock onto the record.DirectionKeys
// shape a Protector needs for the client-write and server-write
// directions respectively.
func (kb KeyBlock) ClientKeys() record.DirectionKeys {
	return record.DirectionKeys{MACKey: kb.ClientWriteMACKey, EncKey: kb.ClientWriteKey}
}

func (kb KeyBlock) ServerKeys() record.DirectionKeys {
	return record.DirectionKeys{MACKey: kb.ServerWriteMACKey, EncKey: kb.ServerWriteKey}
}

// ComputeFinished computes the 12-byte verify_data for one side's Finished
// message: PRF(master_secret, label, SHA256(transcript), 12)
// [rfc5246:7.4.9].
func ComputeFinished(backend cryptobackend.Backend, masterSecret []byte, isClient bool, transcript []byte) [12]byte {
	label := labelServerFinished
	if isClient {
		label = labelClientFinished
	}
	hash := backend.TranscriptHash(transcript)
	out := backend.PRF(masterSecret, label, hash[:], 12)
	var result [12]byte
	copy(result[:], out)
	return result
}
