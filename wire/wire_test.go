package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseByteLengthRoundTrip(t *testing.T) {
	dst := AppendByteLength(nil, []byte("hello"))
	offset, value, err := ParseByteLength(dst, 0)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), value)
	assert.Equal(t, len(dst), offset)
}

func TestParseByteLengthTooShort(t *testing.T) {
	_, _, err := ParseByteLength([]byte{0x05, 0x01}, 0)
	assert.ErrorIs(t, err, ErrBodyTooShort)
}

func TestParseUint16LengthRoundTrip(t *testing.T) {
	dst := AppendUint16Length(nil, []byte("the quick brown fox"))
	offset, value, err := ParseUint16Length(dst, 0)
	assert.NoError(t, err)
	assert.Equal(t, []byte("the quick brown fox"), value)
	assert.Equal(t, len(dst), offset)
}

func TestMarkAndFillUint16Offset(t *testing.T) {
	dst := []byte{0xAA}
	dst, mark := MarkUint16Offset(dst)
	dst = append(dst, []byte("payload")...)
	FillUint16Offset(dst, mark)

	offset, body, err := ParseUint16Length(dst, 1)
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), body)
	assert.Equal(t, len(dst), offset)
}

func TestMarkAndFillUint24Offset(t *testing.T) {
	dst, mark := MarkUint24Offset(nil)
	dst = append(dst, []byte("abc")...)
	FillUint24Offset(dst, mark)

	offset, body, err := ParseUint24Length(dst, 0)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), body)
	assert.Equal(t, len(dst), offset)
}

func TestParseFinishDetectsExcessBytes(t *testing.T) {
	err := ParseFinish([]byte{0x01, 0x02}, 1)
	assert.ErrorIs(t, err, ErrExcessBytes)
}

func TestParseUint24(t *testing.T) {
	dst := AppendUint24(nil, 0x0A0B0C)
	offset, value, err := ParseUint24(dst, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x0A0B0C), value)
	assert.Equal(t, 3, offset)
}

func TestParseFixedBytes(t *testing.T) {
	var dst [4]byte
	offset, err := ParseFixedBytes([]byte{1, 2, 3, 4, 5}, 1, dst[:])
	assert.NoError(t, err)
	assert.Equal(t, 5, offset)
	assert.Equal(t, [4]byte{2, 3, 4, 5}, dst)
}
