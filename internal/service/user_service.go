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
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrUnknownFavorite   = errors.New("favorites reference an unknown restaurant")
)

// UserService provides user registration and profile operations
type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (string, error)
	List(ctx context.Context) ([]model.User, error)
	ReplaceFavorites(ctx context.Context, userID uuid.UUID, restaurantIDs []uuid.UUID) ([]uuid.UUID, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error)
}

type userService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	jwtUtil        *utils.JWTUtil
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, restaurantRepo repository.RestaurantRepository, jwtUtil *utils.JWTUtil) UserService {
	return &userService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		jwtUtil:        jwtUtil,
	}
}

// Register creates a new user account and returns a token for it
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return "", ErrUserAlreadyExists
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AvatarURL:    utils.GravatarURL(req.Email),
		Favorites:    []uuid.UUID{},
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("user created but token generation failed")
		return "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}
	return token, nil
}

// List returns every user
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ReplaceFavorites swaps the user's favorites for the given restaurant ids.
// Favorites behave as a set: duplicates collapse and order is not kept. Ids
// that do not name an existing restaurant are rejected.
func (s *userService) ReplaceFavorites(ctx context.Context, userID uuid.UUID, restaurantIDs []uuid.UUID) ([]uuid.UUID, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	favorites := dedupe(restaurantIDs)
	if len(favorites) > 0 {
		count, err := s.restaurantRepo.CountByIDs(ctx, favorites)
		if err != nil {
			return nil, fmt.Errorf("failed to verify favorites: %w", err)
		}
		if count != len(favorites) {
			return nil, ErrUnknownFavorite
		}
	}

	if err := s.userRepo.UpdateFavorites(ctx, userID, favorites); err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	return favorites, nil
}

// UpdateAddress sets the user's delivery address
func (s *userService) UpdateAddress(ctx context.Context, userID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	address := model.Address{
		PostalCode:   req.PostalCode,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
	}
	if err := s.userRepo.UpdateAddress(ctx, userID, address); err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}
	return &address, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
