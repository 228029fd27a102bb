package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marmitapp/internal/model"
	"marmitapp/internal/repository"
	"marmitapp/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrRestaurantExists   = errors.New("restaurant already exists")
	ErrRestaurantNotFound = errors.New("restaurant does not exist")
	ErrInvalidCNPJ        = errors.New("invalid CNPJ")
	ErrWrongPassword      = errors.New("old password does not match")
)

// RestaurantService provides restaurant account and profile operations
type RestaurantService interface {
	Register(ctx context.Context, req model.RegisterRestaurantRequest) (string, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Filtered(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, error)
	FavoritesOf(ctx context.Context, userID uuid.UUID) ([]model.Restaurant, error)
	CompleteInfo(ctx context.Context, subjectID uuid.UUID, req model.CompleteInfoRequest) (*model.Restaurant, error)
	ChangePassword(ctx context.Context, subjectID uuid.UUID, req model.ChangePasswordRequest) error
	Delete(ctx context.Context, subjectID uuid.UUID) error
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	jwtUtil        *utils.JWTUtil
}

// NewRestaurantService creates a new RestaurantService
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		jwtUtil:        jwtUtil,
	}
}

// Register creates a new restaurant account and returns a token for it.
// Name, CNPJ and email must each be unique; the CNPJ must pass its checksum.
func (s *restaurantService) Register(ctx context.Context, req model.RegisterRestaurantRequest) (string, error) {
	if !utils.IsValidCNPJ(req.CNPJ) {
		return "", ErrInvalidCNPJ
	}

	existing, err := s.restaurantRepo.FindConflicting(ctx, req.Name, req.CNPJ, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing restaurant: %w", err)
	}
	if existing != nil {
		return "", ErrRestaurantExists
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	restaurant := &model.Restaurant{
		ID:              uuid.New(),
		Name:            req.Name,
		TaxID:           req.CNPJ,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Active:          true,
		DistanceLimitKm: model.DefaultDistanceLimitKm,
		CreatedAt:       time.Now(),
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrRestaurantExists
		}
		return "", fmt.Errorf("failed to create restaurant: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(restaurant.ID)
	if err != nil {
		log.Error().Err(err).Str("name", restaurant.Name).Msg("restaurant created but token generation failed")
		return "", fmt.Errorf("restaurant created, but failed to generate token: %w", err)
	}
	return token, nil
}

// List returns every restaurant
func (s *restaurantService) List(ctx context.Context) ([]model.Restaurant, error) {
	restaurants, err := s.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return restaurants, nil
}

// GetByID returns one restaurant
func (s *restaurantService) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}

// Filtered returns a page of restaurants matching a name filter
func (s *restaurantService) Filtered(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}
	restaurants, err := s.restaurantRepo.FindFiltered(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to filter restaurants: %w", err)
	}
	return restaurants, nil
}

// FavoritesOf returns the restaurants the user has favorited
func (s *restaurantService) FavoritesOf(ctx context.Context, userID uuid.UUID) ([]model.Restaurant, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if len(user.Favorites) == 0 {
		return []model.Restaurant{}, nil
	}

	restaurants, err := s.restaurantRepo.FindByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite restaurants: %w", err)
	}
	return restaurants, nil
}

// CompleteInfo fills in the profile of the authenticated restaurant. The
// target row is always the token subject; ids in the payload are ignored.
func (s *restaurantService) CompleteInfo(ctx context.Context, subjectID uuid.UUID, req model.CompleteInfoRequest) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	restaurant.PostalCode = req.PostalCode
	restaurant.Address = req.Address
	restaurant.Number = req.Number
	restaurant.Phone = req.Phone
	restaurant.HasWhatsapp = req.HasWhatsapp
	restaurant.LogoURL = req.Logo
	if req.Active != nil {
		restaurant.Active = *req.Active
	}
	if req.DistanceLimitKm != nil {
		restaurant.DistanceLimitKm = *req.DistanceLimitKm
	}
	if req.PaymentMethods != nil {
		restaurant.PaymentMethods = req.PaymentMethods
	}

	if err := s.restaurantRepo.UpdateInfo(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant info: %w", err)
	}
	return restaurant, nil
}

// ChangePassword replaces the restaurant's password after verifying the old one
func (s *restaurantService) ChangePassword(ctx context.Context, subjectID uuid.UUID, req model.ChangePasswordRequest) error {
	restaurant, err := s.restaurantRepo.FindByID(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("failed to find restaurant: %w", err)
	}
	if restaurant == nil {
		return ErrRestaurantNotFound
	}

	if !utils.CheckPasswordHash(req.OldPassword, restaurant.PasswordHash) {
		return ErrWrongPassword
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.restaurantRepo.UpdatePassword(ctx, subjectID, passwordHash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// Delete removes the authenticated restaurant. Its menus and meal options
// are removed by the schema cascade; its id is stripped from user favorites.
func (s *restaurantService) Delete(ctx context.Context, subjectID uuid.UUID) error {
	restaurant, err := s.restaurantRepo.FindByID(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("failed to find restaurant: %w", err)
	}
	if restaurant == nil {
		return ErrRestaurantNotFound
	}

	if err := s.restaurantRepo.Delete(ctx, subjectID); err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if err := s.userRepo.RemoveFavoriteFromAll(ctx, subjectID); err != nil {
		// The restaurant row is already gone; favorites pointing at it are
		// filtered on read, so log and report success.
		log.Error().Err(err).Str("restaurant", subjectID.String()).Msg("failed to strip deleted restaurant from favorites")
	}
	return nil
}
