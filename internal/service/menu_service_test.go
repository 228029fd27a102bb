package service_test

import (
	"context"
	"testing"
	"time"

	"marmitapp/internal/model"
	"marmitapp/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dishes(n int) []model.Dish {
	out := make([]model.Dish, n)
	for i := range out {
		out[i] = model.Dish{Description: "dish", Value: 15.9}
	}
	return out
}

func TestParseMenuDate(t *testing.T) {
	want := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	got, err := service.ParseMenuDate("09/03/2026")
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = service.ParseMenuDate("2026-03-09")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = service.ParseMenuDate("03-09-2026")
	require.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestMenuService_Create_Success(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)
	restaurantID := uuid.New()

	menuRepo.On("FindByRestaurantAndDate", mock.Anything, restaurantID, mock.Anything).
		Return(nil, nil).Once()
	menuRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Menu")).Return(nil).Once()

	menu, err := svc.Create(context.Background(), restaurantID, model.CreateMenuRequest{
		Date:       "09/03/2026",
		MainDishes: dishes(3), // exactly at the cap
		SideDishes: dishes(5),
		Salads:     dishes(3),
		Desserts:   dishes(3),
	})

	require.NoError(t, err)
	require.Equal(t, restaurantID, menu.RestaurantID)
	require.Len(t, menu.MainDishes, 3)
	menuRepo.AssertExpectations(t)
}

func TestMenuService_Create_TooManyMainDishes(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateMenuRequest{
		Date:       "09/03/2026",
		MainDishes: dishes(4),
	})

	require.ErrorIs(t, err, service.ErrTooManyDishes)
	menuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_Create_TooManySideDishes(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateMenuRequest{
		Date:       "09/03/2026",
		SideDishes: dishes(6),
	})

	require.ErrorIs(t, err, service.ErrTooManyDishes)
}

func TestMenuService_Create_DateCollision(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)
	restaurantID := uuid.New()

	existing := &model.Menu{ID: uuid.New(), RestaurantID: restaurantID}
	menuRepo.On("FindByRestaurantAndDate", mock.Anything, restaurantID, mock.Anything).
		Return(existing, nil).Once()

	_, err := svc.Create(context.Background(), restaurantID, model.CreateMenuRequest{
		Date: "09/03/2026",
	})

	require.ErrorIs(t, err, service.ErrMenuDateTaken)
	menuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMenuService_Update_NotOwned(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)

	menuID := uuid.New()
	otherRestaurant := uuid.New()
	menuRepo.On("FindByID", mock.Anything, menuID).
		Return(&model.Menu{ID: menuID, RestaurantID: otherRestaurant}, nil).Once()

	// The caller owns a different restaurant; their token must not reach
	// someone else's menu.
	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateMenuRequest{
		ID:   menuID.String(),
		Date: "09/03/2026",
	})

	require.ErrorIs(t, err, service.ErrMenuNotFound)
	menuRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMenuService_Delete(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)
	restaurantID := uuid.New()
	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	menuRepo.On("FindByRestaurantAndDate", mock.Anything, restaurantID, date).
		Return(&model.Menu{ID: uuid.New(), RestaurantID: restaurantID, Date: date}, nil).Once()
	menuRepo.On("DeleteByRestaurantAndDate", mock.Anything, restaurantID, date).Return(nil).Once()

	err := svc.Delete(context.Background(), restaurantID, "09/03/2026")

	require.NoError(t, err)
	menuRepo.AssertExpectations(t)
}

func TestMenuService_Delete_MissingMenu(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	svc := service.NewMenuService(menuRepo)
	restaurantID := uuid.New()

	menuRepo.On("FindByRestaurantAndDate", mock.Anything, restaurantID, mock.Anything).
		Return(nil, nil).Once()

	err := svc.Delete(context.Background(), restaurantID, "09/03/2026")

	require.ErrorIs(t, err, service.ErrMenuNotFound)
}
