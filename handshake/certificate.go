package handshake

import (
	"errors"

	"github.com/vlet/tls12/wire"
)

var ErrCertificateChainEmpty = errors.New("tls: certificate message carries no certificates")

// Certificate is the server's certificate message [rfc5246:7.4.2]. Only a
// single certificate is supported: the chain's remaining entries, if any,
// are parsed (to stay framed correctly) but discarded.
type Certificate struct {
	DER []byte
}

func (msg *Certificate) Parse(body []byte) error {
	offset, chainBody, err := wire.ParseUint24Length(body, 0)
	if err != nil {
		return err
	}
	if err := wire.ParseFinish(body, offset); err != nil {
		return err
	}
	inner := 0
	first := true
	for inner < len(chainBody) {
		next, der, err := wire.ParseUint24Length(chainBody, inner)
		if err != nil {
			return err
		}
		if first {
			msg.DER = append([]byte{}, der...)
			first = false
		}
		inner = next
	}
	if first {
		return ErrCertificateChainEmpty
	}
	return nil
}

func (msg *Certificate) Write() []byte {
	body := make([]byte, 0, len(msg.DER)+6)
	body, chainMark := wire.MarkUint24Offset(body)
	body, certMark := wire.MarkUint24Offset(body)
	body = append(body, msg.DER...)
	wire.FillUint24Offset(body, certMark)
	wire.FillUint24Offset(body, chainMark)
	return body
}
