package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"unityplates"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret      string   `env:"ACCESS_TOKEN_SECRET,required"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:5174"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one exists, then parses the environment into
// a Config. A missing .env is fine; deployments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment config: %w", err)
	}
	return &cfg, nil
}

// Production reports whether the process runs behind TLS with a
// cross-origin frontend, which changes the session cookie attributes.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}
