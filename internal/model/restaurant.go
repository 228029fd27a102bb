package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const DefaultDistanceLimitKm = 5

// Restaurant represents a restaurant account and its public profile
type Restaurant struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	TaxID           string          `json:"cnpj"`
	Email           string          `json:"email"`
	PasswordHash    string          `json:"-"` // Do not expose password hash in JSON responses
	PostalCode      string          `json:"postalCode"`
	Address         string          `json:"address"`
	Number          string          `json:"number"`
	Phone           string          `json:"phone"`
	HasWhatsapp     bool            `json:"hasWhatsapp"`
	LogoURL         string          `json:"logo"`
	Active          bool            `json:"active"`
	DistanceLimitKm int             `json:"distanceLimitKm"`
	PaymentMethods  json.RawMessage `json:"paymentMethods,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RegisterRestaurantRequest is the body of POST /api/restaurant
type RegisterRestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	CNPJ     string `json:"cnpj" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// CompleteInfoRequest fills in the profile fields left empty at registration.
// It is always applied to the authenticated restaurant, never to an id taken
// from the body.
type CompleteInfoRequest struct {
	PostalCode      string          `json:"postalCode" binding:"required,numeric"`
	Address         string          `json:"address" binding:"required"`
	Number          string          `json:"number" binding:"required,numeric"`
	Phone           string          `json:"phone" binding:"required,numeric"`
	HasWhatsapp     bool            `json:"hasWhatsapp"`
	Logo            string          `json:"logo"`
	Active          *bool           `json:"active"`
	DistanceLimitKm *int            `json:"distanceLimitKm"`
	PaymentMethods  json.RawMessage `json:"paymentMethods"`
}

// ChangePasswordRequest is the body of PUT /api/restaurant/password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// RestaurantFilters holds the coerced path params of
// GET /api/restaurant/filter/:filter?/:page?/:limit?
type RestaurantFilters struct {
	Filter string
	Page   int
	Limit  int
}
