package tlserrors

import (
	"strings"
	"testing"
)

func TestFatalClassification(t *testing.T) {
	if !ErrBadRecordMAC.Fatal() {
		t.Error("ErrBadRecordMAC should be fatal")
	}
	if WarnNoRenegotiation.Fatal() {
		t.Error("WarnNoRenegotiation should not be fatal")
	}
	if CloseNotify.Fatal() {
		t.Error("CloseNotify should not be fatal")
	}
}

func TestFromAlertKnownCodes(t *testing.T) {
	cases := []struct {
		code byte
		want *Error
	}{
		{AlertCloseNotify, CloseNotify},
		{AlertUnexpectedMessage, ErrUnexpectedMessage},
		{AlertBadRecordMAC, ErrBadRecordMAC},
		{AlertRecordOverflow, ErrRecordOverflow},
		{AlertHandshakeFailure, ErrHandshakeFailure},
		{AlertProtocolVersion, ErrProtocolVersion},
		{AlertInternalError, ErrInternalError},
		{AlertNoRenegotiation, WarnNoRenegotiation},
	}
	for _, c := range cases {
		got := FromAlert(LevelFatal, c.code)
		if got != c.want {
			t.Errorf("FromAlert(%d) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestFromAlertUnknownCode(t *testing.T) {
	got := FromAlert(LevelWarning, 250)
	if got.Code != 250 || got.Level != LevelWarning {
		t.Errorf("FromAlert(250) = %+v, want level/code preserved", got)
	}
}

func TestErrorStringIncludesCode(t *testing.T) {
	msg := ErrHandshakeFailure.Error()
	if msg == "" {
		t.Error("Error() should not be empty")
	}
	if !strings.Contains(msg, "40") {
		t.Errorf("Error() = %q, want it to include alert code 40", msg)
	}
}
