package models

import "github.com/google/uuid"

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: reader@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// LoginUser is the public part of the authenticated user
type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// example: Login successful
	Message string `json:"message"`

	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	User LoginUser `json:"user"`
}
