package model

import "github.com/google/uuid"

// MaxMealOptions caps the number of options a restaurant may hold in total
const MaxMealOptions = 5

// MealOption is one standing meal option offered outside the daily menu
type MealOption struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MealOptions is a restaurant's set of standing meal options
type MealOptions struct {
	ID           uuid.UUID    `json:"id"`
	RestaurantID uuid.UUID    `json:"restaurant"`
	Options      []MealOption `json:"options"`
}

// CreateMealOptionsRequest is the body of POST /api/mealOptions
type CreateMealOptionsRequest struct {
	Options []MealOption `json:"options" binding:"required,dive"`
}

// UpdateMealOptionsRequest replaces an owned option set wholesale
type UpdateMealOptionsRequest struct {
	ID      string       `json:"id" binding:"required,uuid"`
	Options []MealOption `json:"options" binding:"required,dive"`
}
