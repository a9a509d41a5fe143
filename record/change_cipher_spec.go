package record

import "errors"

// ChangeCipherSpecBody is the single byte carried on the
// ContentTypeChangeCipherSpec record [rfc5246:7.1]. It is not a handshake
// message and is never appended to the handshake transcript.
const ChangeCipherSpecBody byte = 0x01

var ErrChangeCipherSpecBody = errors.New("tls: change cipher spec body is not 0x01")

func ParseChangeCipherSpec(body []byte) error {
	if len(body) != 1 || body[0] != ChangeCipherSpecBody {
		return ErrChangeCipherSpecBody
	}
	return nil
}
