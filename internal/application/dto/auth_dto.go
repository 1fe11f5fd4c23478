package dto

import "time"

// RegisterRequest registers a new owner account with its business profile.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	BusinessName    string `json:"business_name" validate:"required,min=1,max=200"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessPhone   string `json:"business_phone,omitempty"`
}

// LoginRequest credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse a user without credentials.
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	BusinessName    string    `json:"business_name,omitempty"`
	BusinessAddress string    `json:"business_address,omitempty"`
	BusinessPhone   string    `json:"business_phone,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LoginResponse carries the signed JWT and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
