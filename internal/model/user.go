package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is a user's delivery address
type Address struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
}

// User represents a registered user of the platform
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"` // Do not expose password hash in JSON responses
	AvatarURL    string      `json:"avatar"`
	Favorites    []uuid.UUID `json:"favorites"`
	Address      *Address    `json:"address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// RegisterUserRequest is the body of POST /api/users
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/users and POST /api/auth/restaurants
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateFavoritesRequest replaces the user's favorites list wholesale
type UpdateFavoritesRequest struct {
	Favorites []string `json:"favorites" binding:"required,dive,uuid"`
}

// UpdateAddressRequest is the body of PUT /api/users/address
type UpdateAddressRequest struct {
	PostalCode   string `json:"postalCode" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
}
