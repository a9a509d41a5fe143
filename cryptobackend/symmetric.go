package cryptobackend

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"hash"
)

var errNotRSAKey = errors.New("tls: certificate public key is not RSA")
var errUnknownMACAlgorithm = errors.New("tls: unknown MAC algorithm")

func hasherFor(alg MACAlgorithm) func() hash.Hash {
	switch alg {
	case MACMD5:
		return md5.New
	case MACSHA1:
		return sha1.New
	case MACSHA256:
		return sha256.New
	default:
		panic(errUnknownMACAlgorithm)
	}
}

func (stdlibBackend) HMAC(alg MACAlgorithm, key, data []byte) []byte {
	mac := hmac.New(hasherFor(alg), key)
	mac.Write(data)
	return mac.Sum(nil)
}

func (stdlibBackend) MACSize(alg MACAlgorithm) int {
	switch alg {
	case MACNull:
		return 0
	case MACMD5:
		return md5.Size
	case MACSHA1:
		return sha1.Size
	case MACSHA256:
		return sha256.Size
	default:
		panic(errUnknownMACAlgorithm)
	}
}

func (stdlibBackend) RSAEncrypt(pub *rsa.PublicKey, plaintext []byte) ([]byte, error) {
	return rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
}

func (stdlibBackend) RSADecrypt(priv *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	return rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext)
}

func (stdlibBackend) AESCBCEncrypt(key, iv, plaintext []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic("tls: aes.NewCipher failed: " + err.Error())
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out
}

func (stdlibBackend) AESCBCDecrypt(key, iv, ciphertext []byte) []byte {
	block, err := aes.NewCipher(key)
	if err != nil {
		panic("tls: aes.NewCipher failed: " + err.Error())
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out
}

func (stdlibBackend) TripleDESCBCEncrypt(key, iv, plaintext []byte) []byte {
	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		panic("tls: des.NewTripleDESCipher failed: " + err.Error())
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out
}

func (stdlibBackend) TripleDESCBCDecrypt(key, iv, ciphertext []byte) []byte {
	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		panic("tls: des.NewTripleDESCipher failed: " + err.Error())
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out
}

func (stdlibBackend) RC4Keystream(key, data []byte) []byte {
	c, err := rc4.NewCipher(key)
	if err != nil {
		panic("tls: rc4.NewCipher failed: " + err.Error())
	}
	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out
}

func (stdlibBackend) Random(n int) []byte {
	out := make([]byte, n)
	if _, err := rand.Read(out); err != nil {
		panic("tls: crypto/rand failed: " + err.Error())
	}
	return out
}
