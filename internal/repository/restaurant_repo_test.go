package repository_test

import (
	"context"
	"testing"
	"time"

	"marmitapp/internal/model"
	"marmitapp/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantRepository_Create_UniqueViolation(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := repository.NewRestaurantRepository(mockPool)
	restaurant := &model.Restaurant{
		ID:              uuid.New(),
		Name:            "Marmitas da Vila",
		TaxID:           "11222333000181",
		Email:           "r@x.com",
		PasswordHash:    "hash",
		Active:          true,
		DistanceLimitKm: 5,
		CreatedAt:       time.Now(),
	}

	// Second registration with a taken name/tax id/email trips the unique
	// constraint even when the pre-check read raced past it.
	mockPool.ExpectExec("INSERT INTO restaurants").
		WithArgs(restaurant.ID, restaurant.Name, restaurant.TaxID, restaurant.Email,
			restaurant.PasswordHash, restaurant.Active, restaurant.DistanceLimitKm, restaurant.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.Create(context.Background(), restaurant)

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRestaurantRepository_FindConflicting_NoConflict(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := repository.NewRestaurantRepository(mockPool)

	mockPool.ExpectQuery("SELECT (.+) FROM restaurants WHERE name").
		WithArgs("Marmitas da Vila", "11222333000181", "r@x.com").
		WillReturnError(pgx.ErrNoRows)

	restaurant, err := repo.FindConflicting(context.Background(), "Marmitas da Vila", "11222333000181", "r@x.com")

	assert.NoError(t, err)
	assert.Nil(t, restaurant)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestMealOptionsRepository_CountOptions(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := repository.NewMealOptionsRepository(mockPool)
	restaurantID := uuid.New()

	rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(3)
	mockPool.ExpectQuery("SELECT COALESCE").
		WithArgs(restaurantID).
		WillReturnRows(rows)

	count, err := repo.CountOptions(context.Background(), restaurantID)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
