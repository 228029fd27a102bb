package service

import (
	"context"
	"errors"
	"fmt"

	"marmitapp/internal/model"
	"marmitapp/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrMealOptionsNotFound = errors.New("meal options do not exist")
	ErrTooManyOptions      = errors.New("maximum 5 options")
)

// MealOptionsService provides standing meal-option operations
type MealOptionsService interface {
	Create(ctx context.Context, restaurantID uuid.UUID, req model.CreateMealOptionsRequest) (*model.MealOptions, error)
	ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MealOptions, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.MealOptions, error)
	Update(ctx context.Context, subjectID uuid.UUID, req model.UpdateMealOptionsRequest) (*model.MealOptions, error)
}

type mealOptionsService struct {
	mealOptionsRepo repository.MealOptionsRepository
}

// NewMealOptionsService creates a new MealOptionsService
func NewMealOptionsService(mealOptionsRepo repository.MealOptionsRepository) MealOptionsService {
	return &mealOptionsService{mealOptionsRepo: mealOptionsRepo}
}

// Create adds an option set for the restaurant. A restaurant holds at most
// five options in total, counted across all of its sets.
func (s *mealOptionsService) Create(ctx context.Context, restaurantID uuid.UUID, req model.CreateMealOptionsRequest) (*model.MealOptions, error) {
	held, err := s.mealOptionsRepo.CountOptions(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing options: %w", err)
	}
	if held+len(req.Options) > model.MaxMealOptions {
		return nil, ErrTooManyOptions
	}

	mealOptions := &model.MealOptions{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Options:      req.Options,
	}
	if err := s.mealOptionsRepo.Create(ctx, mealOptions); err != nil {
		return nil, fmt.Errorf("failed to create meal options: %w", err)
	}
	return mealOptions, nil
}

// ByRestaurant returns the restaurant's option sets
func (s *mealOptionsService) ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MealOptions, error) {
	sets, err := s.mealOptionsRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal options: %w", err)
	}
	return sets, nil
}

// GetByID returns one option set
func (s *mealOptionsService) GetByID(ctx context.Context, id uuid.UUID) (*model.MealOptions, error) {
	mealOptions, err := s.mealOptionsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find meal options: %w", err)
	}
	if mealOptions == nil {
		return nil, ErrMealOptionsNotFound
	}
	return mealOptions, nil
}

// Update replaces an owned option set wholesale, keeping the total under
// the cap. A set belonging to another restaurant is reported as not found.
func (s *mealOptionsService) Update(ctx context.Context, subjectID uuid.UUID, req model.UpdateMealOptionsRequest) (*model.MealOptions, error) {
	setID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, ErrMealOptionsNotFound
	}

	mealOptions, err := s.mealOptionsRepo.FindByID(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to find meal options: %w", err)
	}
	if mealOptions == nil || mealOptions.RestaurantID != subjectID {
		return nil, ErrMealOptionsNotFound
	}

	held, err := s.mealOptionsRepo.CountOptions(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing options: %w", err)
	}
	if held-len(mealOptions.Options)+len(req.Options) > model.MaxMealOptions {
		return nil, ErrTooManyOptions
	}

	mealOptions.Options = req.Options
	if err := s.mealOptionsRepo.Update(ctx, mealOptions); err != nil {
		return nil, fmt.Errorf("failed to update meal options: %w", err)
	}
	return mealOptions, nil
}
