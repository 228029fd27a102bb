package service_test

import (
	"context"
	"testing"

	"marmitapp/internal/model"
	"marmitapp/internal/service"
	"marmitapp/internal/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(userRepo *MockUserRepository, restaurantRepo *MockRestaurantRepository) service.UserService {
	return service.NewUserService(userRepo, restaurantRepo, utils.NewJWTUtil("test-secret", 100))
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil).Once()

	var created *model.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*model.User) }).
		Return(nil).Once()

	token, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Name: "A", Email: "a@x.com", Password: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "A", created.Name)
	require.NotEqual(t, "secret1", created.PasswordHash)
	require.True(t, utils.CheckPasswordHash("secret1", created.PasswordHash))
	require.NotEmpty(t, created.AvatarURL)

	// The issued token must verify back to the stored user's id
	subjectID, err := utils.NewJWTUtil("test-secret", 100).ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, subjectID)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	existing := &model.User{ID: uuid.New(), Email: "a@x.com"}
	userRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(existing, nil).Once()

	_, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Name: "A", Email: "a@x.com", Password: "secret1",
	})

	require.ErrorIs(t, err, service.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_ReplaceFavorites_SetSemantics(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	userID := uuid.New()
	r1 := uuid.New()
	r2 := uuid.New()

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil).Once()
	// Duplicates collapse before the existence check
	restaurantRepo.On("CountByIDs", mock.Anything, []uuid.UUID{r1, r2}).Return(2, nil).Once()
	userRepo.On("UpdateFavorites", mock.Anything, userID, []uuid.UUID{r1, r2}).Return(nil).Once()

	favorites, err := svc.ReplaceFavorites(context.Background(), userID, []uuid.UUID{r1, r2, r1})

	require.NoError(t, err)
	if diff := cmp.Diff([]uuid.UUID{r1, r2}, favorites); diff != "" {
		t.Errorf("favorites mismatch (-want +got):\n%s", diff)
	}
	userRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestUserService_ReplaceFavorites_UnknownRestaurant(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	userID := uuid.New()
	r1 := uuid.New()

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil).Once()
	restaurantRepo.On("CountByIDs", mock.Anything, []uuid.UUID{r1}).Return(0, nil).Once()

	_, err := svc.ReplaceFavorites(context.Background(), userID, []uuid.UUID{r1})

	require.ErrorIs(t, err, service.ErrUnknownFavorite)
	userRepo.AssertNotCalled(t, "UpdateFavorites", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ReplaceFavorites_EmptyClearsList(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil).Once()
	userRepo.On("UpdateFavorites", mock.Anything, userID, []uuid.UUID{}).Return(nil).Once()

	favorites, err := svc.ReplaceFavorites(context.Background(), userID, nil)

	require.NoError(t, err)
	require.Empty(t, favorites)
	restaurantRepo.AssertNotCalled(t, "CountByIDs", mock.Anything, mock.Anything)
}

func TestUserService_UpdateAddress(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	svc := newUserService(userRepo, restaurantRepo)

	userID := uuid.New()
	want := model.Address{PostalCode: "04571000", Street: "Rua A", Number: "12", Neighborhood: "Centro"}

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil).Once()
	userRepo.On("UpdateAddress", mock.Anything, userID, want).Return(nil).Once()

	address, err := svc.UpdateAddress(context.Background(), userID, model.UpdateAddressRequest{
		PostalCode: "04571000", Street: "Rua A", Number: "12", Neighborhood: "Centro",
	})

	require.NoError(t, err)
	if diff := cmp.Diff(&want, address); diff != "" {
		t.Errorf("address mismatch (-want +got):\n%s", diff)
	}
}
