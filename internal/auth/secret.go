package auth

import "crypto/subtle"

// SecretVerifier guards the webhook ingestion path. Keeping it behind an
// interface lets the credential scheme change without touching the
// classification logic.
type SecretVerifier interface {
	// Verify reports whether the presented secret is acceptable
	Verify(secret string) bool
}

// StaticSecret verifies against a single shared value configured at startup
type StaticSecret struct {
	secret string
}

func NewStaticSecret(secret string) *StaticSecret {
	return &StaticSecret{secret: secret}
}

// Verify compares in constant time so a mismatch reveals nothing about
// which part of the secret was wrong
func (s *StaticSecret) Verify(secret string) bool {
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(secret)) == 1
}
