package handshake

import "github.com/vlet/tls12/wire"

// ServerHelloDone has no contents [rfc5246:7.4.5].
type ServerHelloDone struct{}

func (ServerHelloDone) Parse(body []byte) error {
	return wire.ParseFinish(body, 0)
}

func (ServerHelloDone) Write() []byte { return nil }
