package service_test

import (
	"context"
	"time"

	"marmitapp/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []uuid.UUID) error {
	args := m.Called(ctx, id, favorites)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) error {
	args := m.Called(ctx, id, address)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFavoriteFromAll(ctx context.Context, restaurantID uuid.UUID) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindConflicting(ctx context.Context, name, taxID, email string) (*model.Restaurant, error) {
	args := m.Called(ctx, name, taxID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindFiltered(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Restaurant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockRestaurantRepository) UpdateInfo(ctx context.Context, restaurant *model.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindAll(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) FindByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) (*model.Menu, error) {
	args := m.Called(ctx, restaurantID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) DeleteByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) error {
	args := m.Called(ctx, restaurantID, date)
	return args.Error(0)
}

type MockMealOptionsRepository struct {
	mock.Mock
}

func (m *MockMealOptionsRepository) Create(ctx context.Context, mealOptions *model.MealOptions) error {
	args := m.Called(ctx, mealOptions)
	return args.Error(0)
}

func (m *MockMealOptionsRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MealOptions, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealOptions), args.Error(1)
}

func (m *MockMealOptionsRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MealOptions, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MealOptions), args.Error(1)
}

func (m *MockMealOptionsRepository) CountOptions(ctx context.Context, restaurantID uuid.UUID) (int, error) {
	args := m.Called(ctx, restaurantID)
	return args.Int(0), args.Error(1)
}

func (m *MockMealOptionsRepository) Update(ctx context.Context, mealOptions *model.MealOptions) error {
	args := m.Called(ctx, mealOptions)
	return args.Error(0)
}
