package record

import (
	"encoding/binary"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/cryptobackend"
	"github.com/vlet/tls12/tlserrors"
	"github.com/vlet/tls12/tlsconst"
	"github.com/vlet/tls12/tlsrand"
)

// DirectionKeys is the slice of the key block relevant to one direction
// (client-write or server-write): MAC key and bulk encryption key. TLS 1.2
// CBC suites use a fresh explicit IV per record rather than the fixed IV
// field from the key block [rfc5246:6.2.3.2], so no IV is carried here.
type DirectionKeys struct {
	MACKey []byte
	EncKey []byte
}

// Protector applies or removes record-layer protection for one direction
// of one epoch. A Context holds two live Protectors (current_decode,
// current_encode); ChangeCipherSpec replaces them wholesale, never mutates
// one in place, matching the "pending vs current is a copy" invariant.
type Protector struct {
	Suite   *ciphersuite.Suite
	Keys    DirectionKeys
	Backend cryptobackend.Backend
}

// NullProtector is the identity Protector in force before any
// ChangeCipherSpec has been applied in this direction.
func NullProtector(backend cryptobackend.Backend) Protector {
	return Protector{Suite: ciphersuite.Null, Backend: backend}
}

func macInput(seq uint64, typ tlsconst.ContentType, version tlsconst.ProtocolVersion, plaintext []byte) []byte {
	buf := make([]byte, 0, 13+len(plaintext))
	buf = binary.BigEndian.AppendUint64(buf, seq)
	buf = append(buf, byte(typ))
	buf = binary.BigEndian.AppendUint16(buf, uint16(version))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(plaintext)))
	buf = append(buf, plaintext...)
	return buf
}

// Seal protects one record's plaintext for transmission [rfc5246:6.2.3].
func (p Protector) Seal(rnd tlsrand.Rand, seq uint64, typ tlsconst.ContentType, version tlsconst.ProtocolVersion, plaintext []byte) []byte {
	if p.Suite.BulkCipher == ciphersuite.BulkCipherNull && p.Suite.MAC == cryptobackend.MACNull {
		return append([]byte{}, plaintext...)
	}

	mac := p.Backend.HMAC(p.Suite.MAC, p.Keys.MACKey, macInput(seq, typ, version, plaintext))
	withMAC := make([]byte, 0, len(plaintext)+len(mac))
	withMAC = append(withMAC, plaintext...)
	withMAC = append(withMAC, mac...)

	switch p.Suite.BulkCipher {
	case ciphersuite.BulkCipherNull:
		return withMAC
	case ciphersuite.BulkCipherRC4128:
		return p.Backend.RC4Keystream(p.Keys.EncKey, withMAC)
	case ciphersuite.BulkCipherAES128CBC, ciphersuite.BulkCipher3DESEDECBC:
		padded := pkcs7Pad(withMAC, p.Suite.BlockLength)
		ivBytes := make([]byte, p.Suite.RecordIVLength)
		rnd.Read(ivBytes)
		ciphertext := p.encryptBlock(ivBytes, padded)
		out := make([]byte, 0, len(ivBytes)+len(ciphertext))
		out = append(out, ivBytes...)
		out = append(out, ciphertext...)
		return out
	default:
		panic("tls: unknown bulk cipher")
	}
}

// Open removes protection from one received record's payload and verifies
// its MAC [rfc5246:6.2.3]. seq is the sequence number this record is
// expected to carry; the caller increments its counter regardless of
// success, per the invariant that seq_read tracks records processed, not
// records verified.
func (p Protector) Open(seq uint64, typ tlsconst.ContentType, version tlsconst.ProtocolVersion, payload []byte) ([]byte, error) {
	if p.Suite.BulkCipher == ciphersuite.BulkCipherNull && p.Suite.MAC == cryptobackend.MACNull {
		return payload, nil
	}

	macLen := p.Suite.MACLength
	var withMAC []byte

	switch p.Suite.BulkCipher {
	case ciphersuite.BulkCipherNull:
		withMAC = payload
	case ciphersuite.BulkCipherRC4128:
		withMAC = p.Backend.RC4Keystream(p.Keys.EncKey, payload)
	case ciphersuite.BulkCipherAES128CBC, ciphersuite.BulkCipher3DESEDECBC:
		ivLen := p.Suite.RecordIVLength
		if len(payload) < ivLen+p.Suite.BlockLength {
			return nil, tlserrors.ErrBadRecordMAC
		}
		iv, ciphertext := payload[:ivLen], payload[ivLen:]
		if len(ciphertext) == 0 || len(ciphertext)%p.Suite.BlockLength != 0 {
			return nil, tlserrors.ErrBadRecordMAC
		}
		plain := p.decryptBlock(iv, ciphertext)
		unpadded, err := pkcs7Unpad(plain, p.Suite.BlockLength)
		if err != nil {
			return nil, err
		}
		withMAC = unpadded
	default:
		panic("tls: unknown bulk cipher")
	}

	if len(withMAC) < macLen {
		return nil, tlserrors.ErrBadRecordMAC
	}
	plaintext, gotMAC := withMAC[:len(withMAC)-macLen], withMAC[len(withMAC)-macLen:]
	wantMAC := p.Backend.HMAC(p.Suite.MAC, p.Keys.MACKey, macInput(seq, typ, version, plaintext))
	if !constantTimeEqual(gotMAC, wantMAC) {
		return nil, tlserrors.ErrBadRecordMAC
	}
	return plaintext, nil
}

func (p Protector) encryptBlock(iv, data []byte) []byte {
	if p.Suite.BulkCipher == ciphersuite.BulkCipher3DESEDECBC {
		return p.Backend.TripleDESCBCEncrypt(p.Keys.EncKey, iv, data)
	}
	return p.Backend.AESCBCEncrypt(p.Keys.EncKey, iv, data)
}

func (p Protector) decryptBlock(iv, data []byte) []byte {
	if p.Suite.BulkCipher == ciphersuite.BulkCipher3DESEDECBC {
		return p.Backend.TripleDESCBCDecrypt(p.Keys.EncKey, iv, data)
	}
	return p.Backend.AESCBCDecrypt(p.Keys.EncKey, iv, data)
}

// pkcs7Pad pads data to a multiple of blockLen, per [rfc5246:6.2.3.2]: the
// pad bytes and the final length byte all equal the pad length.
func pkcs7Pad(data []byte, blockLen int) []byte {
	padLen := blockLen - (len(data) % blockLen)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen - 1)
	}
	return out
}

func pkcs7Unpad(data []byte, blockLen int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockLen != 0 {
		return nil, tlserrors.ErrBadRecordMAC
	}
	padLen := int(data[len(data)-1]) + 1
	if padLen > len(data) || padLen > 255 {
		return nil, tlserrors.ErrBadRecordMAC
	}
	for i := len(data) - padLen; i < len(data); i++ {
		if int(data[i]) != padLen-1 {
			return nil, tlserrors.ErrBadRecordMAC
		}
	}
	return data[:len(data)-padLen], nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
