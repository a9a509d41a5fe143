// Package record implements the TLS 1.2 record layer: framing, the
// protection (MAC+encrypt / decrypt+verify) step, and the per-direction
// sequence counters that feed the MAC's implicit sequence number
// [rfc5246:6.2].
package record

import (
	"encoding/binary"

	"github.com/vlet/tls12/tlsconst"
)

// Header is a parsed record header: type, version, and the consumed
// payload length. The payload itself is returned separately by Parse so
// callers can hand it to Protection without a copy.
type Header struct {
	Type    tlsconst.ContentType
	Version tlsconst.ProtocolVersion
	Length  int
}

// Parse reads one record header+payload from datagram starting at offset
// 0. It returns n == 0 (not an error) when datagram does not yet hold a
// complete record, matching the "need more bytes" contract of feed().
func Parse(datagram []byte) (n int, hdr Header, payload []byte, err error) {
	if len(datagram) < tlsconst.RecordHeaderSize {
		return 0, Header{}, nil, nil
	}
	hdr.Type = tlsconst.ContentType(datagram[0])
	hdr.Version = tlsconst.ProtocolVersion(binary.BigEndian.Uint16(datagram[1:3]))
	length := int(binary.BigEndian.Uint16(datagram[3:5]))
	hdr.Length = length

	end := tlsconst.RecordHeaderSize + length
	if len(datagram) < end {
		return 0, Header{}, nil, nil
	}
	return end, hdr, datagram[tlsconst.RecordHeaderSize:end], nil
}

// AppendHeader appends a record header for the given type/version/length.
func AppendHeader(dst []byte, typ tlsconst.ContentType, version tlsconst.ProtocolVersion, length int) []byte {
	dst = append(dst, byte(typ))
	dst = binary.BigEndian.AppendUint16(dst, uint16(version))
	dst = binary.BigEndian.AppendUint16(dst, uint16(length))
	return dst
}
