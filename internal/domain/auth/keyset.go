// Package auth verifies admin API keys.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// KeySet holds HMAC-SHA256 digests of the configured admin API keys. Raw
// keys are hashed once at construction and never retained.
type KeySet struct {
	pepper []byte
	hashes [][]byte
}

// NewKeySet hashes the given keys with the pepper.
func NewKeySet(pepper []byte, keys []string) *KeySet {
	s := &KeySet{pepper: pepper}
	for _, k := range keys {
		s.hashes = append(s.hashes, s.digest(k))
	}
	return s
}

// Verify reports whether key matches any configured key. Comparison is
// constant-time per candidate to avoid timing side-channels.
func (s *KeySet) Verify(key string) bool {
	d := s.digest(key)
	ok := false
	for _, h := range s.hashes {
		if subtle.ConstantTimeCompare(d, h) == 1 {
			ok = true
		}
	}
	return ok
}

func (s *KeySet) digest(key string) []byte {
	mac := hmac.New(sha256.New, s.pepper)
	mac.Write([]byte(key))
	return mac.Sum(nil)
}
