// Package wire holds the offset-based encode/decode primitives shared by
// the record and handshake codecs: big-endian integers and length-prefixed
// byte strings. Every Parse* function takes the current offset and returns
// the next offset, so callers chain them without an intermediate cursor type.
package wire

import (
	"encoding/binary"
	"errors"
)

var ErrBodyTooShort = errors.New("tls: message body too short")
var ErrExcessBytes = errors.New("tls: message body has excess bytes")

func ParseFinish(body []byte, offset int) error {
	if offset != len(body) {
		return ErrExcessBytes
	}
	return nil
}

func ParseByte(body []byte, offset int) (_ int, value byte, err error) {
	if len(body) < offset+1 {
		return offset, 0, ErrBodyTooShort
	}
	return offset + 1, body[offset], nil
}

func ParseByteConst(body []byte, offset int, want byte, onMismatch error) (int, error) {
	if len(body) < offset+1 {
		return offset, ErrBodyTooShort
	}
	if body[offset] != want {
		return offset, onMismatch
	}
	return offset + 1, nil
}

// ParseByteLength reads a u8 length prefix followed by that many bytes.
func ParseByteLength(body []byte, offset int) (_ int, value []byte, err error) {
	if len(body) < offset+1 {
		return offset, nil, ErrBodyTooShort
	}
	end := offset + 1 + int(body[offset])
	if len(body) < end {
		return offset, nil, ErrBodyTooShort
	}
	return end, body[offset+1 : end], nil
}

func ParseUint16(body []byte, offset int) (_ int, value uint16, err error) {
	if len(body) < offset+2 {
		return offset, 0, ErrBodyTooShort
	}
	return offset + 2, binary.BigEndian.Uint16(body[offset:]), nil
}

func ParseUint16Const(body []byte, offset int, want uint16, onMismatch error) (int, error) {
	if len(body) < offset+2 {
		return offset, ErrBodyTooShort
	}
	if binary.BigEndian.Uint16(body[offset:]) != want {
		return offset, onMismatch
	}
	return offset + 2, nil
}

// ParseUint16Length reads a u16 length prefix followed by that many bytes.
func ParseUint16Length(body []byte, offset int) (_ int, value []byte, err error) {
	if len(body) < offset+2 {
		return offset, nil, ErrBodyTooShort
	}
	end := offset + 2 + int(binary.BigEndian.Uint16(body[offset:]))
	if len(body) < end {
		return offset, nil, ErrBodyTooShort
	}
	return end, body[offset+2 : end], nil
}

// ParseUint24 reads a 24-bit big-endian length, as used by handshake
// message headers and the Certificate message's nested length fields.
func ParseUint24(body []byte, offset int) (_ int, value uint32, err error) {
	if len(body) < offset+3 {
		return offset, 0, ErrBodyTooShort
	}
	value = uint32(body[offset])<<16 | uint32(body[offset+1])<<8 | uint32(body[offset+2])
	return offset + 3, value, nil
}

// ParseUint24Length reads a u24 length prefix followed by that many bytes.
func ParseUint24Length(body []byte, offset int) (_ int, value []byte, err error) {
	next, length, err := ParseUint24(body, offset)
	if err != nil {
		return offset, nil, err
	}
	end := next + int(length)
	if len(body) < end {
		return offset, nil, ErrBodyTooShort
	}
	return end, body[next:end], nil
}

func ParseFixedBytes(body []byte, offset int, dst []byte) (int, error) {
	if len(body) < offset+len(dst) {
		return offset, ErrBodyTooShort
	}
	copy(dst, body[offset:])
	return offset + len(dst), nil
}

func AppendUint24(dst []byte, value uint32) []byte {
	return append(dst, byte(value>>16), byte(value>>8), byte(value))
}

// AppendByteLength appends a u8 length prefix for value, then value itself.
func AppendByteLength(dst []byte, value []byte) []byte {
	dst = append(dst, byte(len(value)))
	return append(dst, value...)
}

// AppendUint16Length appends a u16 length prefix for value, then value itself.
func AppendUint16Length(dst []byte, value []byte) []byte {
	dst = binary.BigEndian.AppendUint16(dst, uint16(len(value)))
	return append(dst, value...)
}

// MarkUint16Offset reserves two bytes for a length to be filled in later by
// FillUint16Offset, used when the length of a nested structure is not known
// until after writing it (cipher suite lists, extensions, etc).
func MarkUint16Offset(dst []byte) ([]byte, int) {
	mark := len(dst)
	return append(dst, 0, 0), mark
}

func FillUint16Offset(dst []byte, mark int) {
	binary.BigEndian.PutUint16(dst[mark:], uint16(len(dst)-mark-2))
}

func MarkUint24Offset(dst []byte) ([]byte, int) {
	mark := len(dst)
	return append(dst, 0, 0, 0), mark
}

func FillUint24Offset(dst []byte, mark int) {
	length := uint32(len(dst) - mark - 3)
	dst[mark] = byte(length >> 16)
	dst[mark+1] = byte(length >> 8)
	dst[mark+2] = byte(length)
}
