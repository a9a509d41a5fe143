// Package handshake implements encode/decode of each TLS 1.2 handshake
// message payload [rfc5246:7.4], independent of the record layer that
// carries them.
package handshake

import (
	"errors"

	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/wire"
)

var ErrHeaderTooShort = errors.New("tls: handshake message header too short")

// Header is the 1-byte type + 3-byte length framing every handshake
// message carries [rfc5246:7.4].
type Header struct {
	Type   tlsconst.HandshakeType
	Length uint32
}

// ParseHeader reads a Header from the front of record. It does not check
// that the body is actually present; callers combine it with
// ParseHeaderAndBody once enough bytes have been reassembled.
func ParseHeader(record []byte) (Header, error) {
	if len(record) < tlsconst.HandshakeHeaderSize {
		return Header{}, ErrHeaderTooShort
	}
	_, length, err := wire.ParseUint24(record, 1)
	if err != nil {
		return Header{}, err
	}
	return Header{Type: tlsconst.HandshakeType(record[0]), Length: length}, nil
}

// ParseHeaderAndBody reads a complete handshake message (header + body)
// from the front of record, returning the number of bytes consumed. It
// returns n == 0 when record does not yet hold a complete message, the
// same "need more bytes" contract as record.Parse.
func ParseHeaderAndBody(record []byte) (n int, hdr Header, body []byte, err error) {
	if len(record) < tlsconst.HandshakeHeaderSize {
		return 0, Header{}, nil, nil
	}
	hdr, err = ParseHeader(record)
	if err != nil {
		return 0, Header{}, nil, err
	}
	end := tlsconst.HandshakeHeaderSize + int(hdr.Length)
	if len(record) < end {
		return 0, Header{}, nil, nil
	}
	return end, hdr, record[tlsconst.HandshakeHeaderSize:end], nil
}

// WriteHeader appends a handshake message header for the given type and body
// length.
func WriteHeader(dst []byte, typ tlsconst.HandshakeType, bodyLength int) []byte {
	dst = append(dst, byte(typ))
	return wire.AppendUint24(dst, uint32(bodyLength))
}

// WriteMessage appends a complete handshake message: header followed by
// body.
func WriteMessage(dst []byte, typ tlsconst.HandshakeType, body []byte) []byte {
	dst = WriteHeader(dst, typ, len(body))
	return append(dst, body...)
}
