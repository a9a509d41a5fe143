package cryptobackend

import (
	"crypto/hmac"
	"crypto/sha256"
)

// pHash implements P_hash from [rfc5246:5]:
//
//	P_hash(secret, seed) = HMAC_hash(secret, A(1) || seed) ||
//	                        HMAC_hash(secret, A(2) || seed) || ...
//	A(0) = seed, A(i) = HMAC_hash(secret, A(i-1))
//
// concatenated until at least n bytes are produced, then truncated to n.
func pHash(secret, seed []byte, n int) []byte {
	out := make([]byte, 0, n+sha256.Size)
	a := seed
	for len(out) < n {
		mac := hmac.New(sha256.New, secret)
		mac.Write(a)
		a = mac.Sum(nil)

		mac = hmac.New(sha256.New, secret)
		mac.Write(a)
		mac.Write(seed)
		out = mac.Sum(out)
	}
	return out[:n]
}

// PRF is TLS 1.2's PRF, always P_SHA256 regardless of cipher suite
// [rfc5246:5]. n == 0 returns an empty, non-nil slice.
func (stdlibBackend) PRF(secret []byte, label string, seed []byte, n int) []byte {
	if n == 0 {
		return []byte{}
	}
	labelSeed := make([]byte, 0, len(label)+len(seed))
	labelSeed = append(labelSeed, label...)
	labelSeed = append(labelSeed, seed...)
	return pHash(secret, labelSeed, n)
}

func (stdlibBackend) TranscriptHash(data []byte) [32]byte {
	return sha256.Sum256(data)
}
