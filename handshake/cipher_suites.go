package handshake

import (
	"encoding/binary"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/wire"
)

// ParseCipherSuites reads a list of cipher suite IDs (already stripped of
// its outer u16 length prefix). Unlike extensions, order matters: the
// server picks the first suite it recognizes.
func ParseCipherSuites(body []byte) ([]ciphersuite.ID, error) {
	if len(body)%2 != 0 {
		return nil, wire.ErrBodyTooShort
	}
	out := make([]ciphersuite.ID, 0, len(body)/2)
	for offset := 0; offset < len(body); offset += 2 {
		out = append(out, ciphersuite.ID(binary.BigEndian.Uint16(body[offset:])))
	}
	return out, nil
}

// WriteCipherSuites appends a u16-length-prefixed list of cipher suite
// IDs.
func WriteCipherSuites(dst []byte, suites []ciphersuite.ID) []byte {
	dst, mark := wire.MarkUint16Offset(dst)
	for _, id := range suites {
		dst = binary.BigEndian.AppendUint16(dst, uint16(id))
	}
	wire.FillUint16Offset(dst, mark)
	return dst
}
