package models

import "time"

// Session is a server-held record of an authenticated identity, referenced
// by an opaque token held in an HTTP-only cookie. The user fields are a
// snapshot taken at login time; they are not refreshed if the underlying
// user row changes until the next login.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	FullName  string    `json:"fullname" db:"fullname"`
	Email     string    `json:"email" db:"email"`
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// User returns the snapshot identity carried by the session.
func (s *Session) User() PublicUser {
	return PublicUser{
		ID:       s.UserID,
		FullName: s.FullName,
		Email:    s.Email,
		Role:     s.Role,
	}
}
