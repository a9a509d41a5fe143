package engine

import (
	"bytes"
	"crypto/rsa"
	"encoding/hex"

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

// Server creates Connections for one certificate/key pair and owns the
// server-side resumption store, keyed by session id rather than by server
// name.
type Server struct {
	backend cryptobackend.Backend
	rnd     tlsrand.Rand

	certDER  []byte
	priv     *rsa.PrivateKey
	sessions *session.Cache
}

// NewServer constructs a Server presenting certDER (a single DER
// certificate) and decrypting ClientKeyExchange with priv.
func NewServer(certDER []byte, priv *rsa.PrivateKey) *Server {
	return &Server{
		backend:  cryptobackend.Stdlib(),
		rnd:      tlsrand.CryptoRand(),
		certDER:  certDER,
		priv:     priv,
		sessions: session.NewCache(),
	}
}

// NewConnection creates a Connection ready to receive a ClientHello.
func (s *Server) NewConnection(cb Callbacks) *Context {
	return &Context{
		role:           RoleServer,
		backend:        s.backend,
		rnd:            s.rnd,
		cb:             cb,
		certDER:        s.certDER,
		priv:           s.priv,
		serverSessions: s.sessions,
		state:          StateIdle,
		readProtector:  record.NullProtector(s.backend),
		writeProtector: record.NullProtector(s.backend),
	}
}

func sessionKey(id []byte) string { return hex.EncodeToString(id) }

// serverExpectClientHello decides new session vs. resumption and sends
// the corresponding reply flight in the same call.
type serverExpectClientHello struct{ unexpectedDriver }

func (*serverExpectClientHello) onClientHello(ctx *Context, msg handshake.ClientHello, _ []byte) error {
	if msg.Version != tlsconst.VersionTLS12 {
		return tlserrors.ErrProtocolVersion
	}
	ctx.clientRandom = msg.Random
	ctx.proposedSessionID = msg.SessionID
	ctx.proposedSuites = msg.CipherSuites

	if len(msg.SessionID) > 0 {
		if entry, ok := ctx.serverSessions.Lookup(sessionKey(msg.SessionID)); ok {
			return ctx.serverResume(entry)
		}
	}
	return ctx.serverNewSession(msg.CipherSuites)
}

func (ctx *Context) serverNewSession(offered []ciphersuite.ID) error {
	var chosen *ciphersuite.Suite
	for _, id := range offered {
		if s, ok := ciphersuite.Lookup(id); ok {
			chosen = s
			break
		}
	}
	if chosen == nil {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.suite = chosen
	ctx.resuming = false
	ctx.version = tlsconst.VersionTLS12
	ctx.serverRandom = newHelloRandom(ctx.rnd)
	sessionID := make([]byte, 32)
	ctx.rnd.Read(sessionID)
	ctx.sessionID = sessionID

	hello := handshake.ServerHello{
		Version:           ctx.version,
		Random:            ctx.serverRandom,
		SessionID:         ctx.sessionID,
		CipherSuite:       chosen.ID,
		CompressionMethod: 0,
	}
	ctx.sendHandshake(tlsconst.HandshakeTypeServerHello, hello.Write())

	cert := handshake.Certificate{DER: ctx.certDER}
	ctx.sendHandshake(tlsconst.HandshakeTypeCertificate, cert.Write())

	var done handshake.ServerHelloDone
	ctx.sendHandshake(tlsconst.HandshakeTypeServerHelloDone, done.Write())

	ctx.setState(StateSessionNew)
	return nil
}

func (ctx *Context) serverResume(entry session.Entry) error {
	ctx.resuming = true
	ctx.suite = entry.Suite
	ctx.sessionID = entry.SessionID
	ctx.version = entry.TLSVersion
	ctx.masterSecret = entry.MasterSecret
	ctx.serverRandom = newHelloRandom(ctx.rnd)

	ctx.keyBlock = keys.ComputeKeyBlock(ctx.backend, ctx.suite, ctx.masterSecret[:], ctx.clientRandom[:], ctx.serverRandom[:])
	ctx.installPendingProtectors()

	hello := handshake.ServerHello{
		Version:           ctx.version,
		Random:            ctx.serverRandom,
		SessionID:         ctx.sessionID,
		CipherSuite:       ctx.suite.ID,
		CompressionMethod: 0,
	}
	ctx.sendHandshake(tlsconst.HandshakeTypeServerHello, hello.Write())

	ctx.sendChangeCipherSpec()
	ctx.writeProtector = ctx.pendingWrite
	ctx.seqWrite = 0

	verifyData := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], false, ctx.transcript)
	finished := handshake.Finished{VerifyData: verifyData}
	ctx.sendHandshake(tlsconst.HandshakeTypeFinished, finished.Write())

	ctx.setState(StateSessionResume)
	return nil
}

// serverExpectClientKeyExchange decrypts the premaster secret and then,
// once the client's ChangeCipherSpec arrives, switches to the new read
// keys.
type serverExpectClientKeyExchange struct{ unexpectedDriver }

func (*serverExpectClientKeyExchange) onClientKeyExchange(ctx *Context, msg handshake.ClientKeyExchange, _ []byte) error {
	preMaster, err := ctx.backend.RSADecrypt(ctx.priv, msg.EncryptedPreMasterSecret)
	if err != nil {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.masterSecret = keys.ComputeMasterSecret(ctx.backend, preMaster, ctx.clientRandom[:], ctx.serverRandom[:])
	ctx.keyBlock = keys.ComputeKeyBlock(ctx.backend, ctx.suite, ctx.masterSecret[:], ctx.clientRandom[:], ctx.serverRandom[:])
	ctx.installPendingProtectors()
	return nil
}

func (*serverExpectClientKeyExchange) onChangeCipherSpec(ctx *Context) error {
	ctx.readProtector = ctx.pendingRead
	ctx.seqRead = 0
	ctx.setState(StateHandshakeHalf)
	return nil
}

// serverExpectFinished verifies the client's Finished, then completes the
// handshake by sending the server's own ChangeCipherSpec and Finished in
// the same call.
type serverExpectFinished struct{ unexpectedDriver }

func (*serverExpectFinished) onFinished(ctx *Context, msg handshake.Finished, raw []byte) error {
	want := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], true, ctx.transcript)
	if !bytes.Equal(msg.VerifyData[:], want[:]) {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.appendTranscript(raw)

	ctx.sendChangeCipherSpec()
	ctx.writeProtector = ctx.pendingWrite
	ctx.seqWrite = 0

	verifyData := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], false, ctx.transcript)
	finished := handshake.Finished{VerifyData: verifyData}
	ctx.sendHandshake(tlsconst.HandshakeTypeFinished, finished.Write())

	ctx.serverSessions.Store(sessionKey(ctx.sessionID), session.Entry{
		SessionID:    ctx.sessionID,
		TLSVersion:   ctx.version,
		Suite:        ctx.suite,
		Compression:  0,
		MasterSecret: ctx.masterSecret,
	})
	ctx.finishHandshake()
	return nil
}

// serverExpectResumeFinish mirrors clientExpectResumeFinish: the server
// already sent its ChangeCipherSpec+Finished when it decided to resume,
// and now waits for the client's.
type serverExpectResumeFinish struct{ unexpectedDriver }

func (*serverExpectResumeFinish) onChangeCipherSpec(ctx *Context) error {
	ctx.readProtector = ctx.pendingRead
	ctx.seqRead = 0
	return nil
}

func (*serverExpectResumeFinish) onFinished(ctx *Context, msg handshake.Finished, raw []byte) error {
	want := keys.ComputeFinished(ctx.backend, ctx.masterSecret[:], true, ctx.transcript)
	if !bytes.Equal(msg.VerifyData[:], want[:]) {
		return tlserrors.ErrHandshakeFailure
	}
	ctx.appendTranscript(raw)
	ctx.finishHandshake()
	return nil
}
