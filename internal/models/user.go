package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique, normalized email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
