package engine

import (
	"github.com/vlet/tls12/handshake"
	"github.com/vlet/tls12/tlserrors"
)

// openDriver serves both roles once the handshake has completed. The only
// expected inbound messages are application data and, on the server side,
// a renegotiation attempt, which is rejected without closing the
// connection.
type openDriver struct {
	unexpectedDriver
}

func (*openDriver) onApplicationData(ctx *Context, data []byte) error {
	ctx.cb.fireData(data)
	return nil
}

func (*openDriver) onClientHello(ctx *Context, _ handshake.ClientHello, _ []byte) error {
	if ctx.role != RoleServer {
		return tlserrors.ErrUnexpectedMessage
	}
	return tlserrors.WarnNoRenegotiation
}
