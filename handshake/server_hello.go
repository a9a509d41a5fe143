package handshake

import (
	"encoding/binary"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/wire"
)

// ServerHello is the server's reply to ClientHello [rfc5246:7.4.1.3].
type ServerHello struct {
	Version           tlsconst.ProtocolVersion
	Random            [32]byte
	SessionID         []byte
	CipherSuite       ciphersuite.ID
	CompressionMethod byte
}

func (msg *ServerHello) Parse(body []byte) error {
	offset, version, err := wire.ParseUint16(body, 0)
	if err != nil {
		return err
	}
	msg.Version = tlsconst.ProtocolVersion(version)

	offset, err = wire.ParseFixedBytes(body, offset, msg.Random[:])
	if err != nil {
		return err
	}

	offset, sessionID, err := wire.ParseByteLength(body, offset)
	if err != nil {
		return err
	}
	msg.SessionID = append([]byte{}, sessionID...)

	offset, suite, err := wire.ParseUint16(body, offset)
	if err != nil {
		return err
	}
	msg.CipherSuite = ciphersuite.ID(suite)

	offset, compression, err := wire.ParseByte(body, offset)
	if err != nil {
		return err
	}
	msg.CompressionMethod = compression

	if offset == len(body) {
		return nil // extensions are optional
	}
	offset, extBody, err := wire.ParseUint16Length(body, offset)
	if err != nil {
		return err
	}
	_, err = ParseExtensions(extBody) // extensions other than SNI are not meaningful in ServerHello here
	if err != nil {
		return err
	}
	return wire.ParseFinish(body, offset)
}

func (msg *ServerHello) Write() []byte {
	body := make([]byte, 0, 64)
	body = binary.BigEndian.AppendUint16(body, uint16(msg.Version))
	body = append(body, msg.Random[:]...)
	body = wire.AppendByteLength(body, msg.SessionID)
	body = binary.BigEndian.AppendUint16(body, uint16(msg.CipherSuite))
	body = append(body, msg.CompressionMethod)
	return body
}
