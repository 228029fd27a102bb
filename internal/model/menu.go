package model

import (
	"time"

	"github.com/google/uuid"
)

// Per-section caps on a day's menu
const (
	MaxMainDishes = 3
	MaxSideDishes = 5
	MaxSalads     = 3
	MaxDesserts   = 3
)

// Dish is one entry in a menu section
type Dish struct {
	Description string  `json:"description" binding:"required"`
	Value       float64 `json:"value"`
}

// Menu is a restaurant's menu for one calendar date.
// A restaurant publishes at most one menu per date.
type Menu struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant"`
	Date         time.Time `json:"date"`
	MainDishes   []Dish    `json:"mainDishes"`
	SideDishes   []Dish    `json:"sideDishes"`
	Salads       []Dish    `json:"salads"`
	Desserts     []Dish    `json:"desserts"`
}

// CreateMenuRequest is the body of POST /api/menu. Date is accepted as
// DD/MM/YYYY (legacy clients) or YYYY-MM-DD.
type CreateMenuRequest struct {
	Date       string `json:"date" binding:"required"`
	MainDishes []Dish `json:"mainDishes" binding:"dive"`
	SideDishes []Dish `json:"sideDishes" binding:"dive"`
	Salads     []Dish `json:"salads" binding:"dive"`
	Desserts   []Dish `json:"desserts" binding:"dive"`
}

// UpdateMenuRequest replaces an owned menu wholesale
type UpdateMenuRequest struct {
	ID         string `json:"id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	MainDishes []Dish `json:"mainDishes" binding:"dive"`
	SideDishes []Dish `json:"sideDishes" binding:"dive"`
	Salads     []Dish `json:"salads" binding:"dive"`
	Desserts   []Dish `json:"desserts" binding:"dive"`
}
