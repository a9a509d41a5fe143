package engine

import (
	"github.com/vlet/tls12/handshake"
	"github.com/vlet/tls12/record"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/tlserrors"
)

// Feed synchronously processes every complete record held in data plus
// whatever was buffered from earlier calls, invoking callbacks and
// enqueueing outbound records along the way. Reprocessing the same prefix
// plus additional bytes in one call yields the same observable outcome as
// splitting it across many calls.
func (ctx *Context) Feed(data []byte) {
	if ctx.shutdownFlag {
		return
	}
	ctx.inBuf = append(ctx.inBuf, data...)
	for {
		if ctx.shutdownFlag {
			return
		}
		n, hdr, payload, err := record.Parse(ctx.inBuf)
		if err != nil {
			ctx.raiseAlert(tlserrors.ErrInternalError)
			return
		}
		if n == 0 {
			return
		}
		ctx.inBuf = ctx.inBuf[n:]
		if perr := ctx.processRecord(hdr, payload); perr != nil {
			ctx.raiseAlert(perr)
		}
	}
}

// processRecord runs the inbound pipeline for one already-framed record:
// version/content-type checks, protection removal, overflow check, and
// dispatch by content type.
func (ctx *Context) processRecord(hdr record.Header, payload []byte) error {
	if !hdr.Type.Valid() {
		return tlserrors.ErrUnexpectedMessage
	}
	if !tlsconst.IsTLSVersion(hdr.Version) {
		return tlserrors.ErrProtocolVersion
	}
	if hdr.Length > tlsconst.MaxProtectedLength {
		return tlserrors.ErrRecordOverflow
	}

	plaintext, err := ctx.readProtector.Open(ctx.seqRead, hdr.Type, hdr.Version, payload)
	ctx.seqRead++
	if err != nil {
		return err
	}
	if len(plaintext) > tlsconst.MaxPlaintextLength {
		return tlserrors.ErrRecordOverflow
	}

	switch hdr.Type {
	case tlsconst.ContentTypeChangeCipherSpec:
		return ctx.handleChangeCipherSpec(plaintext)
	case tlsconst.ContentTypeAlert:
		var alert record.Alert
		if err := alert.Parse(plaintext); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		return ctx.handleInboundAlert(alert)
	case tlsconst.ContentTypeHandshake:
		return ctx.feedHandshake(plaintext)
	case tlsconst.ContentTypeApplicationData:
		if ctx.state != StateOpen {
			if len(plaintext) == 0 {
				return nil // an empty record before OPEN is ignored
			}
			return tlserrors.ErrUnexpectedMessage
		}
		return ctx.driver().onApplicationData(ctx, plaintext)
	default:
		return tlserrors.ErrUnexpectedMessage
	}
}

func (ctx *Context) handleChangeCipherSpec(body []byte) error {
	if err := record.ParseChangeCipherSpec(body); err != nil {
		return tlserrors.ErrUnexpectedMessage
	}
	return ctx.driver().onChangeCipherSpec(ctx)
}

// feedHandshake reassembles handshake messages across record boundaries:
// it buffers per-connection across Feed calls until a complete
// hs_type|length|body unit is available, independent of how the
// underlying records happened to be sliced.
func (ctx *Context) feedHandshake(chunk []byte) error {
	ctx.hsBuf = append(ctx.hsBuf, chunk...)
	for {
		n, hdr, body, err := handshake.ParseHeaderAndBody(ctx.hsBuf)
		if err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		if n == 0 {
			return nil
		}
		raw := append([]byte{}, ctx.hsBuf[:n]...)
		ctx.hsBuf = ctx.hsBuf[n:]
		if err := ctx.dispatchHandshake(hdr.Type, body, raw); err != nil {
			return err
		}
	}
}

// dispatchHandshake parses the message body for its wire type and routes
// it to the current state's driver. Every message except Finished is
// appended to the transcript here, before the driver runs; Finished is
// appended by the driver itself, after verification, since the verify
// computation must exclude the Finished message it is authenticating.
func (ctx *Context) dispatchHandshake(typ tlsconst.HandshakeType, body, raw []byte) error {
	d := ctx.driver()
	switch typ {
	case tlsconst.HandshakeTypeClientHello:
		var msg handshake.ClientHello
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		ctx.appendTranscript(raw)
		return d.onClientHello(ctx, msg, raw)
	case tlsconst.HandshakeTypeServerHello:
		var msg handshake.ServerHello
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		ctx.appendTranscript(raw)
		return d.onServerHello(ctx, msg, raw)
	case tlsconst.HandshakeTypeCertificate:
		var msg handshake.Certificate
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		ctx.appendTranscript(raw)
		return d.onCertificate(ctx, msg, raw)
	case tlsconst.HandshakeTypeServerHelloDone:
		var msg handshake.ServerHelloDone
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		ctx.appendTranscript(raw)
		return d.onServerHelloDone(ctx, raw)
	case tlsconst.HandshakeTypeClientKeyExchange:
		var msg handshake.ClientKeyExchange
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		ctx.appendTranscript(raw)
		return d.onClientKeyExchange(ctx, msg, raw)
	case tlsconst.HandshakeTypeFinished:
		var msg handshake.Finished
		if err := msg.Parse(body); err != nil {
			return tlserrors.ErrUnexpectedMessage
		}
		return d.onFinished(ctx, msg, raw)
	default:
		return tlserrors.ErrUnexpectedMessage
	}
}
