// Package auth holds the portal's authorization policy.
package auth

import (
	"github.com/HoseaMuriira/iruma-portal/internal/app/models"
)

// Allowed maps (required role, actual role) to an allow/deny decision.
//
// The admin role satisfies every check; this is the portal's explicit
// super-role rule, not a fallthrough. An empty required role means any
// authenticated identity passes.
func Allowed(required, actual models.RoleType) bool {
	if actual == models.RoleAdmin {
		return true
	}
	if required == "" {
		return actual.Valid()
	}
	return required == actual
}
