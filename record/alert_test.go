package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertRoundTrip(t *testing.T) {
	a := Alert{Level: AlertLevelFatal, Description: 40}
	body := a.Write(nil)
	assert.Equal(t, AlertSize, len(body))

	var got Alert
	err := got.Parse(body)
	assert.NoError(t, err)
	assert.Equal(t, a, got)
	assert.True(t, got.IsFatal())
}

func TestAlertParseRejectsBadLevel(t *testing.T) {
	var got Alert
	err := got.Parse([]byte{0x05, 0x00})
	assert.ErrorIs(t, err, ErrAlertLevelParsing)
}

func TestAlertParseRejectsTrailingBytes(t *testing.T) {
	var got Alert
	err := got.Parse([]byte{AlertLevelWarning, 0x00, 0xFF})
	assert.Error(t, err)
}
