package service_test

import (
	"context"
	"testing"

	"marmitapp/internal/model"
	"marmitapp/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func options(n int) []model.MealOption {
	out := make([]model.MealOption, n)
	for i := range out {
		out[i] = model.MealOption{Title: "marmita", Price: 18.5}
	}
	return out
}

func TestMealOptionsService_Create_Success(t *testing.T) {
	repo := new(MockMealOptionsRepository)
	svc := service.NewMealOptionsService(repo)
	restaurantID := uuid.New()

	repo.On("CountOptions", mock.Anything, restaurantID).Return(2, nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.MealOptions")).Return(nil).Once()

	mealOptions, err := svc.Create(context.Background(), restaurantID, model.CreateMealOptionsRequest{
		Options: options(3), // 2 held + 3 new = exactly the cap
	})

	require.NoError(t, err)
	require.Equal(t, restaurantID, mealOptions.RestaurantID)
	repo.AssertExpectations(t)
}

func TestMealOptionsService_Create_SixthOptionRejected(t *testing.T) {
	repo := new(MockMealOptionsRepository)
	svc := service.NewMealOptionsService(repo)
	restaurantID := uuid.New()

	repo.On("CountOptions", mock.Anything, restaurantID).Return(5, nil).Once()

	_, err := svc.Create(context.Background(), restaurantID, model.CreateMealOptionsRequest{
		Options: options(1),
	})

	require.ErrorIs(t, err, service.ErrTooManyOptions)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMealOptionsService_Update_ReplacingStaysUnderCap(t *testing.T) {
	repo := new(MockMealOptionsRepository)
	svc := service.NewMealOptionsService(repo)
	restaurantID := uuid.New()
	setID := uuid.New()

	// The restaurant holds 5 options, all in this set; replacing the set
	// with another 5 keeps the total at the cap.
	repo.On("FindByID", mock.Anything, setID).
		Return(&model.MealOptions{ID: setID, RestaurantID: restaurantID, Options: options(5)}, nil).Once()
	repo.On("CountOptions", mock.Anything, restaurantID).Return(5, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.MealOptions")).Return(nil).Once()

	updated, err := svc.Update(context.Background(), restaurantID, model.UpdateMealOptionsRequest{
		ID:      setID.String(),
		Options: options(5),
	})

	require.NoError(t, err)
	require.Len(t, updated.Options, 5)
	repo.AssertExpectations(t)
}

func TestMealOptionsService_Update_NotOwned(t *testing.T) {
	repo := new(MockMealOptionsRepository)
	svc := service.NewMealOptionsService(repo)
	setID := uuid.New()

	repo.On("FindByID", mock.Anything, setID).
		Return(&model.MealOptions{ID: setID, RestaurantID: uuid.New()}, nil).Once()

	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateMealOptionsRequest{
		ID:      setID.String(),
		Options: options(1),
	})

	require.ErrorIs(t, err, service.ErrMealOptionsNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
