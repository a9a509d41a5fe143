package engine

import (
	"github.com/vlet/tls12/handshake"
	"github.com/vlet/tls12/tlserrors"
)

// stateDriver is the narrow per-state interface realizing the handshake
// state machine: one method per expected handshake message or record
// type. A table indexed by (role, state) selects the driver; an
// unhandled callback on a driver is the unexpected_message path. No
// global, dynamically-registered callback table is involved.
type stateDriver interface {
	onClientHello(ctx *Context, msg handshake.ClientHello, raw []byte) error
	onServerHello(ctx *Context, msg handshake.ServerHello, raw []byte) error
	onCertificate(ctx *Context, msg handshake.Certificate, raw []byte) error
	onServerHelloDone(ctx *Context, raw []byte) error
	onClientKeyExchange(ctx *Context, msg handshake.ClientKeyExchange, raw []byte) error
	onChangeCipherSpec(ctx *Context) error
	onFinished(ctx *Context, msg handshake.Finished, raw []byte) error
	onApplicationData(ctx *Context, data []byte) error
}

// unexpectedDriver answers every callback with unexpected_message. Every
// concrete driver embeds it and overrides only the subset relevant to its
// state.
type unexpectedDriver struct{}

func (unexpectedDriver) onClientHello(*Context, handshake.ClientHello, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onServerHello(*Context, handshake.ServerHello, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onCertificate(*Context, handshake.Certificate, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onServerHelloDone(*Context, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onClientKeyExchange(*Context, handshake.ClientKeyExchange, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onChangeCipherSpec(*Context) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onFinished(*Context, handshake.Finished, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}
func (unexpectedDriver) onApplicationData(*Context, []byte) error {
	return tlserrors.ErrUnexpectedMessage
}

// clientDrivers and serverDrivers are indexed by State. A nil entry (and
// any index past StateOpen) falls back to unexpectedDriver through
// Context.driver.
var clientDrivers = [StateClosed + 1]stateDriver{
	StateHandshakeStart: &clientExpectServerHello{},
	StateSessionNew:     &clientExpectCertAndDone{},
	StateSessionResume:  &clientExpectResumeFinish{},
	StateHandshakeHalf:  &clientExpectChangeCipherSpec{},
	StateHandshakeFull:  &clientExpectFinished{},
	StateOpen:           &openDriver{},
}

var serverDrivers = [StateClosed + 1]stateDriver{
	StateIdle:           &serverExpectClientHello{},
	StateSessionNew:     &serverExpectClientKeyExchange{},
	StateSessionResume:  &serverExpectResumeFinish{},
	StateHandshakeHalf:  &serverExpectFinished{},
	StateOpen:           &openDriver{},
}
