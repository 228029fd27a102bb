package repository

import (
	"context"
	"errors"
	"fmt"

	"marmitapp/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []uuid.UUID) error
	UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) error
	RemoveFavoriteFromAll(ctx context.Context, restaurantID uuid.UUID) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, avatar_url, favorites, address, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.AvatarURL, &user.Favorites, &user.Address, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, name, email, password_hash, avatar_url, favorites, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, user.ID, user.Name, user.Email, user.PasswordHash,
		user.AvatarURL, user.Favorites, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, the service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindAll retrieves every user
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UpdateFavorites replaces the user's favorites list wholesale
func (r *userRepository) UpdateFavorites(ctx context.Context, id uuid.UUID, favorites []uuid.UUID) error {
	sql := `UPDATE users SET favorites = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, id, favorites)
	if err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}
	return nil
}

// UpdateAddress replaces the user's address
func (r *userRepository) UpdateAddress(ctx context.Context, id uuid.UUID, address model.Address) error {
	sql := `UPDATE users SET address = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, sql, id, address)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

// RemoveFavoriteFromAll strips a restaurant id from every user's favorites;
// called when the restaurant is deleted.
func (r *userRepository) RemoveFavoriteFromAll(ctx context.Context, restaurantID uuid.UUID) error {
	sql := `UPDATE users SET favorites = array_remove(favorites, $1) WHERE favorites @> ARRAY[$1]::uuid[]`
	_, err := r.db.Exec(ctx, sql, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite from users: %w", err)
	}
	return nil
}
