package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ConnectDB establishes a connection pool to PostgreSQL
func ConnectDB(cfg App) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN())
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Info().Msg("Successfully connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).
			Msgf("Failed to connect to database, retrying in %v", retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		favorites UUID[] NOT NULL DEFAULT '{}',
		address JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		tax_id TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		postal_code TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		has_whatsapp BOOLEAN NOT NULL DEFAULT FALSE,
		logo_url TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		distance_limit_km INT NOT NULL DEFAULT 5,
		payment_methods JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS menus (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		main_dishes JSONB NOT NULL DEFAULT '[]',
		side_dishes JSONB NOT NULL DEFAULT '[]',
		salads JSONB NOT NULL DEFAULT '[]',
		desserts JSONB NOT NULL DEFAULT '[]',
		UNIQUE (restaurant_id, date)
	);

	CREATE TABLE IF NOT EXISTS meal_options (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		options JSONB NOT NULL DEFAULT '[]'
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_menus_restaurant_id ON menus(restaurant_id);
	CREATE INDEX IF NOT EXISTS idx_menus_date ON menus(date);
	CREATE INDEX IF NOT EXISTS idx_meal_options_restaurant_id ON meal_options(restaurant_id);
	CREATE INDEX IF NOT EXISTS idx_restaurants_name ON restaurants(name);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
