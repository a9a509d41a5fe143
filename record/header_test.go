package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlet/tls12/tlsconst"
)

func TestParseNeedsMoreBytes(t *testing.T) {
	n, _, _, err := Parse([]byte{0x17, 0x03, 0x03, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestParseHeaderAndPayloadRoundTrip(t *testing.T) {
	payload := []byte("hello world")
	buf := AppendHeader(nil, tlsconst.ContentTypeApplicationData, tlsconst.VersionTLS12, len(payload))
	buf = append(buf, payload...)
	buf = append(buf, 0xFF) // trailing bytes belonging to the next record

	n, hdr, got, err := Parse(buf)
	assert.NoError(t, err)
	assert.Equal(t, tlsconst.RecordHeaderSize+len(payload), n)
	assert.Equal(t, tlsconst.ContentTypeApplicationData, hdr.Type)
	assert.Equal(t, tlsconst.VersionTLS12, hdr.Version)
	assert.Equal(t, len(payload), hdr.Length)
	assert.Equal(t, payload, got)
}

func TestParseAcrossManySmallFeeds(t *testing.T) {
	payload := []byte("split across several short reads")
	whole := AppendHeader(nil, tlsconst.ContentTypeHandshake, tlsconst.VersionTLS12, len(payload))
	whole = append(whole, payload...)

	// Feeding one byte at a time must yield n == 0 until the full record
	// has arrived, then the same result as a single-shot Parse.
	for i := 1; i < len(whole); i++ {
		n, _, _, err := Parse(whole[:i])
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
	}
	n, hdr, got, err := Parse(whole)
	assert.NoError(t, err)
	assert.Equal(t, len(whole), n)
	assert.Equal(t, payload, got)
	assert.Equal(t, tlsconst.ContentTypeHandshake, hdr.Type)
}
