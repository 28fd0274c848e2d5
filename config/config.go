package config

import (
	"os"
	"time"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port        string
	Env         string
	RedisURL    string
	PostgresDSN string
	JWTSecret   string

	CartTTL       time.Duration
	PendingAddTTL time.Duration
}

// Load reads configuration from environment variables with local defaults.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=offistation password=offistation dbname=offistation port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "offistation-dev-secret"),

		CartTTL:       time.Hour * 24 * 7, // carts linger a week, like the browser original
		PendingAddTTL: time.Minute * 30,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
