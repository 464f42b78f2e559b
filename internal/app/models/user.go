package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FullName     string    `json:"fullname" db:"fullname" example:"Jane Student"`            // User's full name
	Email        string    `json:"email" db:"email" example:"student@iruma.test"`            // User's email address (unique)
	PasswordHash string    `json:"-" db:"password_hash"`                                     // User's hashed password (excluded from JSON)
	Role         RoleType  `json:"role" db:"role" example:"student"`                         // User's role (admin, teacher or student)
	CreatedAt    time.Time `json:"created_at" db:"created_at" example:"2025-01-01T10:00:00Z"` // Timestamp when the user was created
}

// PublicUser is the session-safe projection of a user row; the password
// hash never leaves the repository layer through this type.
type PublicUser struct {
	ID       int64    `json:"id" db:"id"`
	FullName string   `json:"fullname" db:"fullname"`
	Email    string   `json:"email" db:"email"`
	Role     RoleType `json:"role" db:"role"`
}

// Public strips the user down to the fields a session snapshot carries.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
