package handshake

import "errors"

const VerifyDataLength = 12

var ErrFinishedLength = errors.New("tls: finished message is not 12 bytes")

// Finished carries the PRF-derived verify_data authenticating the
// handshake transcript [rfc5246:7.4.9].
type Finished struct {
	VerifyData [VerifyDataLength]byte
}

func (msg *Finished) Parse(body []byte) error {
	if len(body) != VerifyDataLength {
		return ErrFinishedLength
	}
	copy(msg.VerifyData[:], body)
	return nil
}

func (msg *Finished) Write() []byte {
	return append([]byte{}, msg.VerifyData[:]...)
}
