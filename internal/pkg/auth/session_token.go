package auth

import (
	"github.com/google/uuid"
)

// NewSessionToken returns an opaque token suitable for a session cookie.
// The token carries no claims; all session state lives server-side.
func NewSessionToken() string {
	return uuid.NewString()
}
