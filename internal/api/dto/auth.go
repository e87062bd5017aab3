package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents the request to authenticate a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request to update a user profile
type UpdateProfileRequest struct {
	Name *string `json:"name,omitempty"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	XP        int       `json:"xp"`
	Level     int       `json:"level"`
	Streak    int       `json:"streak"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CheckInResponse represents the daily check-in outcome
type CheckInResponse struct {
	Streak int `json:"streak"`
}
