package dto

import "github.com/HoseaMuriira/iruma-portal/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	FullName string          `json:"fullname" form:"fullname" binding:"required"`
	Email    string          `json:"email" form:"email" binding:"required,email"`
	Password string          `json:"password" form:"password" binding:"required"`
	Role     models.RoleType `json:"role" form:"role" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthResponse represents a successful register/login/me response
type AuthResponse struct {
	OK   bool              `json:"ok"`
	User models.PublicUser `json:"user"`
}

// OKResponse is the bare acknowledgement body (logout)
type OKResponse struct {
	OK bool `json:"ok"`
}
