package service

import (
	"context"
	"errors"
	"fmt"

	"marmitapp/internal/model"
	"marmitapp/internal/repository"
	"marmitapp/internal/utils"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates users and restaurants and issues tokens
type AuthService interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	LoginRestaurant(ctx context.Context, email, password string) (string, error)
	RestaurantProfile(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
}

type authService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	jwtUtil        *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, restaurantRepo repository.RestaurantRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		jwtUtil:        jwtUtil,
	}
}

// LoginUser authenticates a user and returns a token
func (s *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// LoginRestaurant authenticates a restaurant and returns a token
func (s *authService) LoginRestaurant(ctx context.Context, email, password string) (string, error) {
	restaurant, err := s.restaurantRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding restaurant by email: %w", err)
	}
	if restaurant == nil || !utils.CheckPasswordHash(password, restaurant.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(restaurant.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// RestaurantProfile returns the authenticated restaurant's own record
func (s *authService) RestaurantProfile(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding restaurant by id: %w", err)
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	return restaurant, nil
}
