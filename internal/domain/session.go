package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the resolved identity attached to every request. A zero-value
// Session is unauthenticated.
type Session struct {
	Token      string
	User       *User
	Profile    *Profile
	Role       Role
	Restored   bool
	ResolvedAt time.Time
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

func (s *Session) HasRole(role Role) bool {
	return s.IsAuthenticated() && s.Role == role
}

func (s *Session) HasAnyRole(roles ...Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

func (s *Session) UserID() uuid.UUID {
	if !s.IsAuthenticated() {
		return uuid.Nil
	}
	return s.User.ID
}

// SessionRecord is the persisted session row looked up by opaque token at
// start-up, the server-side counterpart of the client's stored token blob.
type SessionRecord struct {
	Token     string    `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
