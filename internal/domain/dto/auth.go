package dto

import "github.com/pmajay/portal/internal/domain"

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	Authenticated bool                    `json:"authenticated"`
	UserID        string                  `json:"user_id,omitempty"`
	Email         string                  `json:"email,omitempty"`
	Role          domain.Role             `json:"role,omitempty"`
	Variant       domain.DashboardVariant `json:"dashboard,omitempty"`
}

type LoginResponse struct {
	AuthToken string          `json:"auth_token"`
	Session   SessionResponse `json:"session"`
}
