package engine

import (
	"bytes"
	"encoding/binary"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/cryptobackend"
	"github.com/vlet/tls12/handshake"
	"github.com/vlet/tls12/keys"
	"github.com/vlet/tls12/record"
	"github.com/vlet/tls12/session"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/tlserrors"
	"github.com/vlet/tls12/tlsrand"
)

// Client creates Connections and owns the session cache shared across
// every one of them.
type Client struct {
	backend cryptobackend.Backend
	rnd     tlsrand.Rand
	cache   *session.Cache

	// Suites is the cipher suite list offered in new-session ClientHellos,
	// in preference order. Defaults to every suite the engine recognizes
	// when nil.
	Suites []ciphersuite.ID
}

// NewClient constructs a Client with the production crypto backend.
func NewClient() *Client {
	return &Client{
		backend: cryptobackend.Stdlib(),
		rnd:     tlsrand.CryptoRand(),
		cache:   session.NewCache(),
	}
}

// NewConnection starts a new handshake toward serverName, enqueuing the
// initial ClientHello before returning.
func (c *Client) NewConnection(serverName string, cb Callbacks) *Context {
	ctx := &Context{
		role:           RoleClient,
		backend:        c.backend,
		rnd:            c.rnd,
		cb:             cb,
		serverName:     serverName,
		clientCache:    c.cache,
		readProtector:  record.NullProtector(c.backend),
		writeProtector: record.NullProtector(c.backend),
	}
	ctx.startClientHandshake(c.suites())
	return ctx
}

func (c *Client) suites() []ciphersuite.ID {
	if len(c.Suites) > 0 {
		return c.Suites
	}
	return defaultSuites()
}

func defaultSuites() []ciphersuite.ID {
	return []ciphersuite.ID{
		ciphersuite.TLS_RSA_WITH_AES_128_CBC_SHA,
		ciphersuite.TLS_RSA_WITH_3DES_EDE_CBC_SHA,
		ciphersuite.TLS_RSA_WITH_RC4_128_SHA,
		ciphersuite.TLS_RSA_WITH_RC4_128_MD5,
		ciphersuite.TLS_RSA_WITH_NULL_SHA256,
		ciphersuite.TLS_RSA_WITH_NULL_SHA,
	}
}

// startClientHandshake builds and sends ClientHello, offering a cached
// session for resumption when one exists for serverName.
func (ctx *Context) startClientHandshake(suites []ciphersuite.ID) {
	ctx.clientRandom = newHelloRandom(ctx.rnd)

	hello := handshake.ClientHello{
		Version:            tlsconst.VersionTLS12,
		Random:             ctx.clientRandom,
		CompressionMethods: []byte{byte(tlsconst.CompressionNull)},
		ServerName:         ctx.serverName,
		CipherSuites:       suites,
	}

	if entry, ok := ctx.clientCache.Lookup(ctx.serverName); ok {
		hello.SessionID = append([]byte{}, entry.SessionID...)
		hello.CipherSuites = []ciphersuite.ID{entry.Suite.ID}
		entryCopy := entry
		ctx.cachedEntry = &entryCopy
	}

	ctx.proposedVersion = hello.Version
	ctx.proposedSuites = hello.CipherSuites
	ctx.proposedSessionID = hello.SessionID

	ctx.setState(StateHandshakeStart)
	ctx.sendHandshake(tlsconst.HandshakeTypeClientHello, hello.Write())
}

// clientExpectServerHello handles ServerHello, branching into a new or
// resumed session depending on whether the server echoed the offered
// session id.
type clientExpectServerHello struct{ unexpectedDriver }

func (*clientExpectServerHello) onServerHello(ctx *Context, msg handshake.ServerHello, _ []byte) error {
	if msg.Version != tlsconst.VersionTLS12 {
		return tlserrors.ErrProtocolVersion
	}
	suite, ok := ciphersuite.Lookup(msg.CipherSuite)
	if !ok {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.version = msg.Version
	ctx.serverRandom = msg.Random
	ctx.suite = suite
	ctx.sessionID = append([]byte{}, msg.SessionID...)

	if ctx.cachedEntry != nil && len(msg.SessionID) > 0 && bytes.Equal(msg.SessionID, ctx.cachedEntry.SessionID) {
		ctx.resuming = true
		ctx.masterSecret = ctx.cachedEntry.MasterSecret
		ctx.keyBlock = keys.ComputeKeyBlock(ctx.backend, ctx.suite, ctx.masterSecret[:], ctx.clientRandom[:], ctx.serverRandom[:])
		ctx.installPendingProtectors()
		ctx.setState(StateSessionResume)
		return nil
	}
	if ctx.cachedEntry != nil {
		ctx.clientCache.Evict(ctx.serverName)
		ctx.cachedEntry = nil
	}
	ctx.resuming = false
	ctx.setState(StateSessionNew)
	return nil
}

// clientExpectCertAndDone handles the new-session flight Certificate,
// ServerHelloDone.
type clientExpectCertAndDone struct{ unexpectedDriver }

func (*clientExpectCertAndDone) onCertificate(ctx *Context, msg handshake.Certificate, _ []byte) error {
	pub, err := ctx.backend.CertPublicKey(msg.DER)
	if err != nil {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.peerPub = pub
	return nil
}

func (*clientExpectCertAndDone) onServerHelloDone(ctx *Context, _ []byte) error {
	if ctx.peerPub == nil {
		return tlserrors.ErrHandshakeFailure
	}
	preMaster := make([]byte, keys.MasterSecretLength)
	binary.BigEndian.PutUint16(preMaster[:2], uint16(ctx.proposedVersion))
	ctx.rnd.Read(preMaster[2:])

	ctx.masterSecret = keys.ComputeMasterSecret(ctx.backend, preMaster, ctx.clientRandom[:], ctx.serverRandom[:])
	ctx.keyBlock = keys.ComputeKeyBlock(ctx.backend, ctx.suite, ctx.masterSecret[:], ctx.clientRandom[:], ctx.serverRandom[:])
	ctx.installPendingProtectors()

	ciphertext, err := ctx.backend.RSAEncrypt(ctx.peerPub, preMaster)
	if err != nil {
		return tlserrors.ErrInternalError
	}
	cke := handshake.ClientKeyExchange{EncryptedPreMasterSecret: ciphertext}
	ctx.sendHandshake(tlsconst.HandshakeTypeClientKeyExchange, cke.Write())

	ctx.sendChangeCipherSpec()
	ctx.writeProtector = ctx.pendingWrite
	ctx.seqWrite = 0

	verifyData := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], true, ctx.transcript)
	finished := handshake.Finished{VerifyData: verifyData}
	ctx.sendHandshake(tlsconst.HandshakeTypeFinished, finished.Write())

	ctx.setState(StateHandshakeHalf)
	return nil
}

// clientExpectChangeCipherSpec waits for the server's ChangeCipherSpec
// before a Finished can be verified under the new read keys.
type clientExpectChangeCipherSpec struct{ unexpectedDriver }

func (*clientExpectChangeCipherSpec) onChangeCipherSpec(ctx *Context) error {
	ctx.readProtector = ctx.pendingRead
	ctx.seqRead = 0
	ctx.setState(StateHandshakeFull)
	return nil
}

// clientExpectFinished verifies the server's Finished and opens the
// connection.
type clientExpectFinished struct{ unexpectedDriver }

func (*clientExpectFinished) onFinished(ctx *Context, msg handshake.Finished, raw []byte) error {
	want := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], false, ctx.transcript)
	if !bytes.Equal(msg.VerifyData[:], want[:]) {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.appendTranscript(raw)
	ctx.finishHandshake()
	return nil
}

// clientExpectResumeFinish drives the abbreviated handshake: the server's
// ChangeCipherSpec and Finished arrive before the client sends its own.
type clientExpectResumeFinish struct{ unexpectedDriver }

func (*clientExpectResumeFinish) onChangeCipherSpec(ctx *Context) error {
	ctx.readProtector = ctx.pendingRead
	ctx.seqRead = 0
	return nil
}

func (*clientExpectResumeFinish) onFinished(ctx *Context, msg handshake.Finished, raw []byte) error {
	want := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], false, ctx.transcript)
	if !bytes.Equal(msg.VerifyData[:], want[:]) {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.appendTranscript(raw)

	ctx.sendChangeCipherSpec()
	ctx.writeProtector = ctx.pendingWrite
	ctx.seqWrite = 0

	verifyData := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], true, ctx.transcript)
	finished := handshake.Finished{VerifyData: verifyData}
	ctx.sendHandshake(tlsconst.HandshakeTypeFinished, finished.Write())

	ctx.finishHandshake()
	return nil
}

// finishHandshake transitions to OPEN, fires on_handshake_finish exactly
// once, and for a new (non-resumed) session remembers the negotiated
// parameters for next time.
func (ctx *Context) finishHandshake() {
	ctx.setState(StateOpen)
	if !ctx.handshakeDone {
		ctx.handshakeDone = true
		ctx.cb.fireHandshakeFinish()
	}
	if ctx.role == RoleClient && !ctx.resuming && len(ctx.sessionID) > 0 {
		ctx.clientCache.Store(ctx.serverName, session.Entry{
			SessionID:    ctx.sessionID,
			TLSVersion:   ctx.version,
			Suite:        ctx.suite,
			Compression:  0,
			MasterSecret: ctx.masterSecret,
		})
	}
}
