package repository

import (
	"context"
	"errors"
	"fmt"

	"marmitapp/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MealOptionsRepository defines operations for meal-option data
type MealOptionsRepository interface {
	Create(ctx context.Context, mealOptions *model.MealOptions) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MealOptions, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MealOptions, error)
	CountOptions(ctx context.Context, restaurantID uuid.UUID) (int, error)
	Update(ctx context.Context, mealOptions *model.MealOptions) error
}

type mealOptionsRepository struct {
	db DB
}

// NewMealOptionsRepository creates a new MealOptionsRepository
func NewMealOptionsRepository(db DB) MealOptionsRepository {
	return &mealOptionsRepository{db: db}
}

func scanMealOptions(row pgx.Row) (*model.MealOptions, error) {
	mo := &model.MealOptions{}
	if err := row.Scan(&mo.ID, &mo.RestaurantID, &mo.Options); err != nil {
		return nil, err
	}
	return mo, nil
}

// Create inserts a new option set
func (r *mealOptionsRepository) Create(ctx context.Context, mo *model.MealOptions) error {
	sql := `INSERT INTO meal_options (id, restaurant_id, options) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, sql, mo.ID, mo.RestaurantID, mo.Options)
	if err != nil {
		return fmt.Errorf("failed to create meal options: %w", err)
	}
	return nil
}

// FindByID retrieves an option set by id
func (r *mealOptionsRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MealOptions, error) {
	sql := `SELECT id, restaurant_id, options FROM meal_options WHERE id = $1`
	mo, err := scanMealOptions(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find meal options by ID: %w", err)
	}
	return mo, nil
}

// FindByRestaurant retrieves a restaurant's option sets
func (r *mealOptionsRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MealOptions, error) {
	sql := `SELECT id, restaurant_id, options FROM meal_options WHERE restaurant_id = $1`
	rows, err := r.db.Query(ctx, sql, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal options by restaurant: %w", err)
	}
	defer rows.Close()

	var sets []model.MealOptions
	for rows.Next() {
		mo, err := scanMealOptions(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal options row: %w", err)
		}
		sets = append(sets, *mo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meal options rows: %w", err)
	}
	return sets, nil
}

// CountOptions reports how many options a restaurant holds across its sets;
// the stored side of the five-option cap.
func (r *mealOptionsRepository) CountOptions(ctx context.Context, restaurantID uuid.UUID) (int, error) {
	var count int
	sql := `SELECT COALESCE(SUM(jsonb_array_length(options)), 0) FROM meal_options WHERE restaurant_id = $1`
	if err := r.db.QueryRow(ctx, sql, restaurantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count meal options: %w", err)
	}
	return count, nil
}

// Update replaces an option set wholesale
func (r *mealOptionsRepository) Update(ctx context.Context, mo *model.MealOptions) error {
	sql := `UPDATE meal_options SET options = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, mo.ID, mo.Options)
	if err != nil {
		return fmt.Errorf("failed to update meal options: %w", err)
	}
	return nil
}
