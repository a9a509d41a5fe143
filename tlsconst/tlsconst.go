// Package tlsconst holds the TLS 1.2 wire enumerations: content types,
// handshake message types, protocol versions and the compression method
// recognized at the record layer, plus header sizes and length limits.
package tlsconst

// ContentType is the record layer's type byte [rfc5246:6.2.1].
type ContentType byte

const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeChangeCipherSpec, ContentTypeAlert, ContentTypeHandshake, ContentTypeApplicationData:
		return true
	}
	return false
}

func (t ContentType) String() string {
	switch t {
	case ContentTypeChangeCipherSpec:
		return "ChangeCipherSpec"
	case ContentTypeAlert:
		return "Alert"
	case ContentTypeHandshake:
		return "Handshake"
	case ContentTypeApplicationData:
		return "ApplicationData"
	default:
		return "<unknown content type>"
	}
}

// ProtocolVersion is the record layer's two-byte version field.
type ProtocolVersion uint16

const (
	VersionTLS10 ProtocolVersion = 0x0301
	VersionTLS11 ProtocolVersion = 0x0302
	VersionTLS12 ProtocolVersion = 0x0303
)

// IsTLSVersion reports whether v is a value the record layer accepts in a
// record header, regardless of whether the handshake layer will negotiate
// it. Only VersionTLS12 is ever negotiated by this engine.
func IsTLSVersion(v ProtocolVersion) bool {
	switch v {
	case VersionTLS10, VersionTLS11, VersionTLS12:
		return true
	}
	return false
}

// HandshakeType is the handshake message header's type byte [rfc5246:7.4].
type HandshakeType byte

const (
	HandshakeTypeHelloRequest       HandshakeType = 0
	HandshakeTypeClientHello        HandshakeType = 1
	HandshakeTypeServerHello        HandshakeType = 2
	HandshakeTypeCertificate        HandshakeType = 11
	HandshakeTypeServerKeyExchange  HandshakeType = 12
	HandshakeTypeCertificateRequest HandshakeType = 13
	HandshakeTypeServerHelloDone    HandshakeType = 14
	HandshakeTypeCertificateVerify  HandshakeType = 15
	HandshakeTypeClientKeyExchange  HandshakeType = 16
	HandshakeTypeFinished           HandshakeType = 20
)

func (t HandshakeType) String() string {
	switch t {
	case HandshakeTypeHelloRequest:
		return "HelloRequest"
	case HandshakeTypeClientHello:
		return "ClientHello"
	case HandshakeTypeServerHello:
		return "ServerHello"
	case HandshakeTypeCertificate:
		return "Certificate"
	case HandshakeTypeServerKeyExchange:
		return "ServerKeyExchange"
	case HandshakeTypeCertificateRequest:
		return "CertificateRequest"
	case HandshakeTypeServerHelloDone:
		return "ServerHelloDone"
	case HandshakeTypeCertificateVerify:
		return "CertificateVerify"
	case HandshakeTypeClientKeyExchange:
		return "ClientKeyExchange"
	case HandshakeTypeFinished:
		return "Finished"
	default:
		return "<unknown handshake type>"
	}
}

// CompressionMethod is the only compression method this engine implements.
type CompressionMethod byte

const CompressionNull CompressionMethod = 0

// HandshakeHeaderSize is the 1-byte type + 3-byte length framing prepended
// to every handshake message body [rfc5246:7.4].
const HandshakeHeaderSize = 4

// RecordHeaderSize is the 1-byte type + 2-byte version + 2-byte length
// framing prepended to every record [rfc5246:6.2.1].
const RecordHeaderSize = 5

// MaxPlaintextLength is the largest pre-protection record payload
// permitted by the record layer [rfc5246:6.2.1].
const MaxPlaintextLength = 1 << 14

// MaxProtectedLength is the largest post-protection record payload
// permitted; larger records trigger record_overflow.
const MaxProtectedLength = MaxPlaintextLength + 2048
