package handshake

import "github.com/vlet/tls12/wire"

// ClientKeyExchange carries the RSA-encrypted premaster secret
// [rfc5246:7.4.7.1]. Only RSA key exchange is implemented (§1 scope).
type ClientKeyExchange struct {
	EncryptedPreMasterSecret []byte
}

func (msg *ClientKeyExchange) Parse(body []byte) error {
	offset, ciphertext, err := wire.ParseUint16Length(body, 0)
	if err != nil {
		return err
	}
	msg.EncryptedPreMasterSecret = append([]byte{}, ciphertext...)
	return wire.ParseFinish(body, offset)
}

func (msg *ClientKeyExchange) Write() []byte {
	return wire.AppendUint16Length(nil, msg.EncryptedPreMasterSecret)
}
