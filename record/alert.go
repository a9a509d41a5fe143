package record

import (
	"errors"

	"github.com/vlet/tls12/wire"
)

const AlertSize = 2

const (
	AlertLevelWarning = 1
	AlertLevelFatal   = 2
)

var ErrAlertLevelParsing = errors.New("tls: alert level failed to parse")

// Alert is the two-byte ContentTypeAlert payload [rfc5246:7.2].
type Alert struct {
	Level       byte
	Description byte
}

func (a Alert) IsFatal() bool { return a.Level == AlertLevelFatal }

func (a *Alert) Parse(body []byte) error {
	offset, level, err := wire.ParseByte(body, 0)
	if err != nil {
		return err
	}
	switch level {
	case AlertLevelWarning, AlertLevelFatal:
		a.Level = level
	default:
		return ErrAlertLevelParsing
	}
	offset, desc, err := wire.ParseByte(body, offset)
	if err != nil {
		return err
	}
	a.Description = desc
	return wire.ParseFinish(body, offset)
}

func (a Alert) Write(body []byte) []byte {
	return append(body, a.Level, a.Description)
}
