package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrSessionSecretTooShort is returned when SESSION_SECRET cannot supply
// both the hash and block keys for the shopper cookie.
var ErrSessionSecretTooShort = errors.New("SESSION_SECRET must be at least 64 characters")

// Config holds all configuration for the storefront.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production
	LogLevel    slog.Level

	// Database. Empty means the in-memory demo cart store.
	DatabaseURL string

	// Shopper session
	SessionSecret string
	SessionMaxAge time.Duration

	// Branding
	BrandName string
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	maxAge, err := time.ParseDuration(getEnv("SESSION_MAX_AGE", "720h"))
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_MAX_AGE: %w", err)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    level,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: maxAge,

		BrandName: getEnv("BRAND_NAME", "SmartMart"),
	}

	// 32 bytes hash key + 32 bytes block key
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("%w, got %d", ErrSessionSecretTooShort, len(cfg.SessionSecret))
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DemoMode reports whether the cart is served from memory.
func (c *Config) DemoMode() bool {
	return c.DatabaseURL == ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	return level, nil
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
