package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marmitapp/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MenuRepository defines operations for menu data
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)
	FindAll(ctx context.Context) ([]model.Menu, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error)
	FindByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) (*model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	DeleteByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) error
}

type menuRepository struct {
	db DB
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DB) MenuRepository {
	return &menuRepository{db: db}
}

const menuColumns = `id, restaurant_id, date, main_dishes, side_dishes, salads, desserts`

func scanMenu(row pgx.Row) (*model.Menu, error) {
	menu := &model.Menu{}
	err := row.Scan(&menu.ID, &menu.RestaurantID, &menu.Date,
		&menu.MainDishes, &menu.SideDishes, &menu.Salads, &menu.Desserts)
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (r *menuRepository) collect(rows pgx.Rows) ([]model.Menu, error) {
	defer rows.Close()

	var menus []model.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		menus = append(menus, *menu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu rows: %w", err)
	}
	return menus, nil
}

// Create inserts a new menu. The unique (restaurant_id, date) constraint
// backs the one-menu-per-date invariant.
func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	sql := `INSERT INTO menus (id, restaurant_id, date, main_dishes, side_dishes, salads, desserts)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, menu.ID, menu.RestaurantID, menu.Date,
		menu.MainDishes, menu.SideDishes, menu.Salads, menu.Desserts)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

// FindByID retrieves a menu by id
func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	sql := `SELECT ` + menuColumns + ` FROM menus WHERE id = $1`
	menu, err := scanMenu(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find menu by ID: %w", err)
	}
	return menu, nil
}

// FindAll retrieves every menu
func (r *menuRepository) FindAll(ctx context.Context) ([]model.Menu, error) {
	sql := `SELECT ` + menuColumns + ` FROM menus ORDER BY date DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	return r.collect(rows)
}

// FindByRestaurant retrieves a restaurant's menus
func (r *menuRepository) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error) {
	sql := `SELECT ` + menuColumns + ` FROM menus WHERE restaurant_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, sql, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menus by restaurant: %w", err)
	}
	return r.collect(rows)
}

// FindByRestaurantAndDate retrieves the restaurant's menu for a date
func (r *menuRepository) FindByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) (*model.Menu, error) {
	sql := `SELECT ` + menuColumns + ` FROM menus WHERE restaurant_id = $1 AND date = $2`
	menu, err := scanMenu(r.db.QueryRow(ctx, sql, restaurantID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find menu by restaurant and date: %w", err)
	}
	return menu, nil
}

// Update replaces the mutable fields of a menu wholesale
func (r *menuRepository) Update(ctx context.Context, menu *model.Menu) error {
	sql := `UPDATE menus
            SET date = $2, main_dishes = $3, side_dishes = $4, salads = $5, desserts = $6
            WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, menu.ID, menu.Date,
		menu.MainDishes, menu.SideDishes, menu.Salads, menu.Desserts)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return nil
}

// DeleteByRestaurantAndDate removes the restaurant's menu for a date
func (r *menuRepository) DeleteByRestaurantAndDate(ctx context.Context, restaurantID uuid.UUID, date time.Time) error {
	sql := `DELETE FROM menus WHERE restaurant_id = $1 AND date = $2`
	_, err := r.db.Exec(ctx, sql, restaurantID, date)
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	return nil
}
