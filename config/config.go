package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultSessionMaxAge = 60 * 60 * 24 * 7 // 7 days, matches the cookie the API issues

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort       string
	SessionMaxAgeSec int
}

// Load reads .env if present and falls back to the process environment.
func Load() (*Config, error) {
	// .env is a convenience for local runs; deployments set real env vars
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:           getenv("DB_HOST", "localhost"),
		DBPort:           getenv("DB_PORT", "5432"),
		DBUser:           getenv("DB_USER", "postgres"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getenv("DB_NAME", "daily_diet"),
		DBSSLMode:        getenv("DB_SSLMODE", "disable"),
		ServerPort:       getenv("SERVER_PORT", "8080"),
		SessionMaxAgeSec: defaultSessionMaxAge,
	}

	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		maxAge, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_MAX_AGE %q: %w", v, err)
		}
		cfg.SessionMaxAgeSec = maxAge
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
