// Package engine ties the record layer, handshake codec, PRF-driven key
// derivation and session cache into the sans-I/O connection object: feed
// bytes in, drain records out, get callbacks for data and handshake
// milestones.
package engine

import (
	"crypto/rsa"
	"encoding/binary"
	"time"

	"log"

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

// Context is one connection's complete state, owned exclusively by the
// caller that created it. Not safe for concurrent use from multiple
// goroutines without external synchronization.
type Context struct {
	role  Role
	state State

	backend cryptobackend.Backend
	rnd     tlsrand.Rand
	cb      Callbacks

	// client role only
	serverName  string
	clientCache *session.Cache
	cachedEntry *session.Entry

	// server role only
	certDER        []byte
	priv           *rsa.PrivateKey
	serverSessions *session.Cache

	proposedVersion   tlsconst.ProtocolVersion
	proposedSuites    []ciphersuite.ID
	proposedSessionID []byte

	suite        *ciphersuite.Suite
	sessionID    []byte
	version      tlsconst.ProtocolVersion
	clientRandom [32]byte
	serverRandom [32]byte
	masterSecret [48]byte
	keyBlock     keys.KeyBlock
	resuming     bool
	peerPub      *rsa.PublicKey

	transcript []byte

	readProtector  record.Protector
	writeProtector record.Protector
	pendingRead    record.Protector
	pendingWrite   record.Protector
	seqRead        uint64
	seqWrite       uint64

	inBuf []byte
	hsBuf []byte

	outQueue [][]byte

	shutdownFlag  bool
	closeSent     bool
	closeReceived bool
	handshakeDone bool
}

func (ctx *Context) driver() stateDriver {
	var table []stateDriver
	if ctx.role == RoleClient {
		table = clientDrivers[:]
	} else {
		table = serverDrivers[:]
	}
	if int(ctx.state) >= len(table) || table[ctx.state] == nil {
		return unexpectedDriver{}
	}
	return table[ctx.state]
}

func (ctx *Context) setState(s State) {
	prev := ctx.state
	ctx.state = s
	ctx.cb.fireChangeState(prev, s)
}

func (ctx *Context) appendTranscript(raw []byte) {
	ctx.transcript = append(ctx.transcript, raw...)
}

// queueRecord protects plaintext for the active write direction and
// appends the resulting wire record to out_queue.
func (ctx *Context) queueRecord(typ tlsconst.ContentType, plaintext []byte) {
	protected := ctx.writeProtector.Seal(ctx.rnd, ctx.seqWrite, typ, tlsconst.VersionTLS12, plaintext)
	ctx.seqWrite++
	rec := record.AppendHeader(make([]byte, 0, tlsconst.RecordHeaderSize+len(protected)), typ, tlsconst.VersionTLS12, len(protected))
	rec = append(rec, protected...)
	ctx.outQueue = append(ctx.outQueue, rec)
}

// sendHandshake frames, transcripts and queues one handshake message. The
// transcript append happens after the caller has computed anything that
// must exclude this very message (Finished verify_data).
func (ctx *Context) sendHandshake(typ tlsconst.HandshakeType, body []byte) []byte {
	raw := handshake.WriteMessage(nil, typ, body)
	ctx.appendTranscript(raw)
	ctx.queueRecord(tlsconst.ContentTypeHandshake, raw)
	return raw
}

func (ctx *Context) sendChangeCipherSpec() {
	ctx.queueRecord(tlsconst.ContentTypeChangeCipherSpec, []byte{record.ChangeCipherSpecBody})
}

func (ctx *Context) sendAlertRecord(level tlserrors.AlertLevel, code byte) {
	alert := record.Alert{Level: byte(level), Description: code}
	ctx.queueRecord(tlsconst.ContentTypeAlert, alert.Write(nil))
}

// installPendingProtectors derives the two directional Protectors from the
// current key block, ready to be swapped in by a ChangeCipherSpec applied
// to either direction.
func (ctx *Context) installPendingProtectors() {
	ctx.pendingRead = record.Protector{Suite: ctx.suite, Keys: ctx.readKeys(), Backend: ctx.backend}
	ctx.pendingWrite = record.Protector{Suite: ctx.suite, Keys: ctx.writeKeys(), Backend: ctx.backend}
}

// raiseAlert turns an error surfaced from record/handshake processing into
// an outbound alert. Fatal errors close the connection and fire on_error;
// warnings (no_renegotiation) are sent and otherwise ignored.
func (ctx *Context) raiseAlert(err error) {
	te, ok := err.(*tlserrors.Error)
	if !ok {
		te = tlserrors.ErrInternalError
	}
	if !te.Fatal() {
		ctx.sendAlertRecord(tlserrors.LevelWarning, te.Code)
		return
	}
	ctx.sendAlertRecord(tlserrors.LevelFatal, te.Code)
	ctx.closeSent = true
	ctx.transitionClosed()
	ctx.cb.fireError(te.Code)
}

func (ctx *Context) transitionClosed() {
	if ctx.state == StateClosed {
		return
	}
	ctx.shutdownFlag = true
	ctx.setState(StateClosed)
}

func (ctx *Context) handleInboundAlert(alert record.Alert) error {
	if alert.Description == tlserrors.AlertCloseNotify {
		ctx.closeReceived = true
		if !ctx.closeSent {
			ctx.sendAlertRecord(tlserrors.LevelWarning, tlserrors.AlertCloseNotify)
			ctx.closeSent = true
		}
		ctx.transitionClosed()
		return nil
	}
	if !alert.IsFatal() {
		log.Printf("tls: received warning alert %d, ignoring", alert.Description)
		return nil
	}
	te := tlserrors.FromAlert(tlserrors.LevelFatal, alert.Description)
	ctx.transitionClosed()
	ctx.cb.fireError(te.Code)
	return nil
}

// Close enqueues a close_notify warning alert, per RFC 5246 §7.2.1.
// Deterministically drives the context to CLOSED once the peer's
// close_notify has also been observed.
func (ctx *Context) Close() {
	if ctx.shutdownFlag || ctx.closeSent {
		return
	}
	ctx.sendAlertRecord(tlserrors.LevelWarning, tlserrors.AlertCloseNotify)
	ctx.closeSent = true
	if ctx.closeReceived {
		ctx.transitionClosed()
	}
}

// NextRecord pops one fully-framed outbound record, or reports none
// available.
func (ctx *Context) NextRecord() ([]byte, bool) {
	if len(ctx.outQueue) == 0 {
		return nil, false
	}
	rec := ctx.outQueue[0]
	ctx.outQueue = ctx.outQueue[1:]
	return rec, true
}

// Send encrypts and queues application data. A no-op outside StateOpen.
func (ctx *Context) Send(data []byte) {
	if ctx.state != StateOpen || ctx.shutdownFlag {
		return
	}
	ctx.queueRecord(tlsconst.ContentTypeApplicationData, data)
}

// Shutdown reports whether the context has reached CLOSED with nothing
// left to drain.
func (ctx *Context) Shutdown() bool {
	return ctx.shutdownFlag && len(ctx.outQueue) == 0
}

// State returns the context's current lifecycle state.
func (ctx *Context) State() State { return ctx.state }

func (ctx *Context) readKeys() record.DirectionKeys {
	if ctx.role == RoleClient {
		return ctx.keyBlock.ServerKeys()
	}
	return ctx.keyBlock.ClientKeys()
}

func (ctx *Context) writeKeys() record.DirectionKeys {
	if ctx.role == RoleClient {
		return ctx.keyBlock.ClientKeys()
	}
	return ctx.keyBlock.ServerKeys()
}

// newHelloRandom builds the gmt_unix_time||random(28) structure used by
// both ClientHello and ServerHello [rfc5246:7.4.1.2].
func newHelloRandom(rnd tlsrand.Rand) [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint32(out[:4], uint32(time.Now().Unix()))
	rnd.Read(out[4:])
	return out
}
