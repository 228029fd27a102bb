package repository

import (
	"context"
	"errors"
	"fmt"

	"marmitapp/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RestaurantRepository defines operations for restaurant data
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*model.Restaurant, error)
	FindConflicting(ctx context.Context, name, taxID, email string) (*model.Restaurant, error)
	FindAll(ctx context.Context) ([]model.Restaurant, error)
	FindFiltered(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Restaurant, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
	UpdateInfo(ctx context.Context, restaurant *model.Restaurant) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantRepository struct {
	db DB
}

// NewRestaurantRepository creates a new RestaurantRepository
func NewRestaurantRepository(db DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

const restaurantColumns = `id, name, tax_id, email, password_hash, postal_code, address, number,
            phone, has_whatsapp, logo_url, active, distance_limit_km, payment_methods, created_at`

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	rest := &model.Restaurant{}
	err := row.Scan(&rest.ID, &rest.Name, &rest.TaxID, &rest.Email, &rest.PasswordHash,
		&rest.PostalCode, &rest.Address, &rest.Number, &rest.Phone, &rest.HasWhatsapp,
		&rest.LogoURL, &rest.Active, &rest.DistanceLimitKm, &rest.PaymentMethods, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

func (r *restaurantRepository) collect(rows pgx.Rows) ([]model.Restaurant, error) {
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, *rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}
	return restaurants, nil
}

// Create inserts a new restaurant into the database
func (r *restaurantRepository) Create(ctx context.Context, rest *model.Restaurant) error {
	sql := `INSERT INTO restaurants (id, name, tax_id, email, password_hash, active, distance_limit_km, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, rest.ID, rest.Name, rest.TaxID, rest.Email,
		rest.PasswordHash, rest.Active, rest.DistanceLimitKm, rest.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// FindByID retrieves a restaurant by id
func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`
	rest, err := scanRestaurant(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find restaurant by ID: %w", err)
	}
	return rest, nil
}

// FindByEmail retrieves a restaurant by email
func (r *restaurantRepository) FindByEmail(ctx context.Context, email string) (*model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email = $1`
	rest, err := scanRestaurant(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find restaurant by email: %w", err)
	}
	return rest, nil
}

// FindConflicting retrieves any restaurant already holding one of the three
// unique fields; the registration pre-check.
func (r *restaurantRepository) FindConflicting(ctx context.Context, name, taxID, email string) (*model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE name = $1 OR tax_id = $2 OR email = $3 LIMIT 1`
	rest, err := scanRestaurant(r.db.QueryRow(ctx, sql, name, taxID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No conflict
		}
		return nil, fmt.Errorf("failed to check conflicting restaurant: %w", err)
	}
	return rest, nil
}

// FindAll retrieves every restaurant
func (r *restaurantRepository) FindAll(ctx context.Context) ([]model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	return r.collect(rows)
}

// FindFiltered retrieves a page of restaurants whose name matches the filter
func (r *restaurantRepository) FindFiltered(ctx context.Context, filters model.RestaurantFilters) ([]model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants
            WHERE name ILIKE '%' || $1 || '%'
            ORDER BY name
            OFFSET $2 LIMIT $3`
	offset := (filters.Page - 1) * filters.Limit
	rows, err := r.db.Query(ctx, sql, filters.Filter, offset, filters.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query filtered restaurants: %w", err)
	}
	return r.collect(rows)
}

// FindByIDs retrieves the restaurants whose ids are in the given set
func (r *restaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Restaurant, error) {
	sql := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = ANY($1) ORDER BY name`
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants by ids: %w", err)
	}
	return r.collect(rows)
}

// CountByIDs reports how many of the given ids exist
func (r *restaurantRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	var count int
	sql := `SELECT COUNT(*) FROM restaurants WHERE id = ANY($1)`
	if err := r.db.QueryRow(ctx, sql, ids).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count restaurants by ids: %w", err)
	}
	return count, nil
}

// UpdateInfo writes the profile fields set by the complete-info flow
func (r *restaurantRepository) UpdateInfo(ctx context.Context, rest *model.Restaurant) error {
	sql := `UPDATE restaurants
            SET postal_code = $2, address = $3, number = $4, phone = $5, has_whatsapp = $6,
                logo_url = $7, active = $8, distance_limit_km = $9, payment_methods = $10
            WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, rest.ID, rest.PostalCode, rest.Address, rest.Number,
		rest.Phone, rest.HasWhatsapp, rest.LogoURL, rest.Active, rest.DistanceLimitKm, rest.PaymentMethods)
	if err != nil {
		return fmt.Errorf("failed to update restaurant info: %w", err)
	}
	return nil
}

// UpdatePassword replaces the restaurant's password hash
func (r *restaurantRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	sql := `UPDATE restaurants SET password_hash = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update restaurant password: %w", err)
	}
	return nil
}

// Delete removes a restaurant; menus and meal options go with it via the
// ON DELETE CASCADE constraints.
func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql := `DELETE FROM restaurants WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	return nil
}
