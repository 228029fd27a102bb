package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// App holds all process configuration. It is loaded once at startup and
// passed into the components that need it; nothing reads the environment
// after Load returns.
type App struct {
	// DB
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	// JWT
	JWTSecret          string `envconfig:"JWT_SECRET_KEY" required:"true"`
	JWTExpirationHours int64  `envconfig:"JWT_EXPIRATION_HOURS" default:"100"`
	// Network
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load populates App from the environment
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// DSN builds the PostgreSQL connection string
func (c App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
