package entity

import "time"

// Session is an in-memory authenticated admin session, keyed by its bearer
// token. Sessions are not persisted; a restart logs everyone out.
type Session struct {
	Token     string    `json:"-"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the session is still usable at the given instant.
// Expiry is checked on every authenticated request, before any role gating.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}
