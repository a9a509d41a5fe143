package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/cryptobackend"
)

func TestComputeMasterSecretIsDeterministic(t *testing.T) {
	backend := cryptobackend.Stdlib()
	preMaster := []byte("0123456789012345678901234567890123456789012345")
	clientRandom := make([]byte, 32)
	serverRandom := make([]byte, 32)
	for i := range clientRandom {
		clientRandom[i] = byte(i)
		serverRandom[i] = byte(i + 32)
	}

	a := ComputeMasterSecret(backend, preMaster, clientRandom, serverRandom)
	b := ComputeMasterSecret(backend, preMaster, clientRandom, serverRandom)
	assert.Equal(t, a, b)

	other := ComputeMasterSecret(backend, preMaster, serverRandom, clientRandom)
	assert.NotEqual(t, a, other)
}

func TestComputeKeyBlockSplitLengthsSumToTotal(t *testing.T) {
	backend := cryptobackend.Stdlib()
	suite, ok := ciphersuite.Lookup(ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA)
	assert.True(t, ok)

	masterSecret := make([]byte, MasterSecretLength)
	clientRandom := make([]byte, 32)
	serverRandom := make([]byte, 32)

	kb := ComputeKeyBlock(backend, suite, masterSecret, clientRandom, serverRandom)
	assert.Len(t, kb.ClientWriteMACKey, backend.MACSize(suite.MAC))
	assert.Len(t, kb.ServerWriteMACKey, backend.MACSize(suite.MAC))
	assert.Len(t, kb.ClientWriteKey, suite.EncKeyLength)
	assert.Len(t, kb.ServerWriteKey, suite.EncKeyLength)

	clientKeys := kb.ClientKeys()
	assert.Equal(t, kb.ClientWriteMACKey, clientKeys.MACKey)
	assert.Equal(t, kb.ClientWriteKey, clientKeys.EncKey)
	serverKeys := kb.ServerKeys()
	assert.Equal(t, kb.ServerWriteMACKey, serverKeys.MACKey)
	assert.Equal(t, kb.ServerWriteKey, serverKeys.EncKey)
}

func TestComputeFinishedDiffersByRoleAndTranscript(t *testing.T) {
	backend := cryptobackend.Stdlib()
	masterSecret := make([]byte, MasterSecretLength)
	transcript := []byte("client-hello||server-hello||certificate||...")

	clientFinished := ComputeFinished(backend, masterSecret, true, transcript)
	serverFinished := ComputeFinished(backend, masterSecret, false, transcript)
	assert.NotEqual(t, clientFinished, serverFinished)

	repeat := ComputeFinished(backend, masterSecret, true, transcript)
	assert.Equal(t, clientFinished, repeat)

	other := ComputeFinished(backend, masterSecret, true, append(transcript, 0xFF))
	assert.NotEqual(t, clientFinished, other)
}
