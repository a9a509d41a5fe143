package tlsconst

import "testing"

func TestContentTypeValid(t *testing.T) {
	valid := []ContentType{ContentTypeChangeCipherSpec, ContentTypeAlert, ContentTypeHandshake, ContentTypeApplicationData}
	for _, ct := range valid {
		if !ct.Valid() {
			t.Errorf("%v should be valid", ct)
		}
	}
	if ContentType(99).Valid() {
		t.Error("content type 99 should not be valid")
	}
}

func TestIsTLSVersion(t *testing.T) {
	for _, v := range []ProtocolVersion{VersionTLS10, VersionTLS11, VersionTLS12} {
		if !IsTLSVersion(v) {
			t.Errorf("%#04x should be a recognized record version", uint16(v))
		}
	}
	if IsTLSVersion(0x0300) {
		t.Error("SSLv3 should not be a recognized record version")
	}
}

func TestMaxLengths(t *testing.T) {
	if MaxProtectedLength != MaxPlaintextLength+2048 {
		t.Errorf("MaxProtectedLength = %d, want MaxPlaintextLength+2048", MaxProtectedLength)
	}
}
