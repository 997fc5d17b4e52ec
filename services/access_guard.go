package services

import "crypto/subtle"

// AccessGuard gates the edit surface behind a single shared secret. The
// secret is fixed at construction time.
type AccessGuard struct {
	secret []byte
}

func NewAccessGuard(secret string) *AccessGuard {
	return &AccessGuard{secret: []byte(secret)}
}

// Authorize reports whether key equals the configured secret. An empty
// secret disables the edit surface entirely.
func (g *AccessGuard) Authorize(key string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), g.secret) == 1
}
