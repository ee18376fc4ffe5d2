package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: reader@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// MessageResponse is the body of every plain success or error answer
// swagger:model MessageResponse
type MessageResponse struct {
	// Human readable message
	// example: User registered successfully
	Message string `json:"message"`
}
