package handshake

import (
	"encoding/binary"
	"errors"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/wire"
)

var ErrClientHelloCompressionMethods = errors.New("tls: client hello advertises no null compression method")

// ClientHello is the client's opening handshake message [rfc5246:7.4.1.2].
type ClientHello struct {
	Version            tlsconst.ProtocolVersion
	Random             [32]byte
	SessionID          []byte
	CipherSuites       []ciphersuite.ID
	CompressionMethods []byte
	ServerName         string
}

func (msg *ClientHello) Parse(body []byte) error {
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

	offset, cipherSuitesBody, err := wire.ParseUint16Length(body, offset)
	if err != nil {
		return err
	}
	msg.CipherSuites, err = ParseCipherSuites(cipherSuitesBody)
	if err != nil {
		return err
	}

	offset, compression, err := wire.ParseByteLength(body, offset)
	if err != nil {
		return err
	}
	msg.CompressionMethods = append([]byte{}, compression...)
	hasNull := false
	for _, m := range msg.CompressionMethods {
		if m == byte(tlsconst.CompressionNull) {
			hasNull = true
		}
	}
	if !hasNull {
		return ErrClientHelloCompressionMethods
	}

	if offset == len(body) {
		return nil // extensions are optional
	}
	offset, extBody, err := wire.ParseUint16Length(body, offset)
	if err != nil {
		return err
	}
	ext, err := ParseExtensions(extBody)
	if err != nil {
		return err
	}
	if ext.HasServerName {
		msg.ServerName = ext.ServerName
	}
	return wire.ParseFinish(body, offset)
}

func (msg *ClientHello) Write() []byte {
	body := make([]byte, 0, 128)
	body = binary.BigEndian.AppendUint16(body, uint16(msg.Version))
	body = append(body, msg.Random[:]...)
	body = wire.AppendByteLength(body, msg.SessionID)
	body = WriteCipherSuites(body, msg.CipherSuites)
	if len(msg.CompressionMethods) == 0 {
		body = wire.AppendByteLength(body, []byte{byte(tlsconst.CompressionNull)})
	} else {
		body = wire.AppendByteLength(body, msg.CompressionMethods)
	}
	if msg.ServerName != "" {
		var extMark int
		body, extMark = wire.MarkUint16Offset(body)
		body = WriteServerNameExtension(body, msg.ServerName)
		wire.FillUint16Offset(body, extMark)
	}
	return body
}
