package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	DB        DatabaseConfig
	Redis     RedisConfig
	Cart      CartConfig
	Microloan MicroloanConfig
	Payment   PaymentConfig
	Worker    WorkerConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CartConfig controls cart persistence.
type CartConfig struct {
	// TTL is the idle lifetime of a persisted cart. Every write refreshes it.
	TTL time.Duration
}

// MicroloanConfig contains credentials for the financing BFF. When BaseURL or
// APIKey is empty the microloan service runs in demo mode with canned offers.
type MicroloanConfig struct {
	BaseURL       string
	APIKey        string
	WebhookSecret string
}

// Configured reports whether the real financing BFF should be called.
func (c *MicroloanConfig) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// PaymentConfig contains credentials for the card charge gateway. When BaseURL
// or APIKey is empty, card checkout runs in demo mode.
type PaymentConfig struct {
	BaseURL string
	APIKey  string
}

// Configured reports whether the real payment gateway should be called.
func (c *PaymentConfig) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// WorkerConfig contains interval configuration for background workers.
type WorkerConfig struct {
	PaymentCheckInterval   time.Duration
	PaymentCheckStaleAfter time.Duration
	PaymentCheckMaxAge     time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Microloan BFF
	cfg.Microloan = MicroloanConfig{
		BaseURL:       getEnv("MICROLOAN_API_URL", ""),
		APIKey:        getEnv("MICROLOAN_API_KEY", ""),
		WebhookSecret: getEnv("MICROLOAN_WEBHOOK_SECRET", ""),
	}

	// Payment gateway
	cfg.Payment = PaymentConfig{
		BaseURL: getEnv("PAYMENT_API_URL", ""),
		APIKey:  getEnv("PAYMENT_API_KEY", ""),
	}

	// Cart persistence (default 30 days idle)
	var err error
	if cfg.Cart.TTL, err = parseDurationEnv("CART_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid CART_TTL: %w", err)
	}

	// Workers (durations)
	if cfg.Worker.PaymentCheckInterval, err = parseDurationEnv("PAYMENT_CHECK_INTERVAL", "30s"); err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_CHECK_INTERVAL: %w", err)
	}
	if cfg.Worker.PaymentCheckStaleAfter, err = parseDurationEnv("PAYMENT_CHECK_STALE_AFTER", "1m"); err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_CHECK_STALE_AFTER: %w", err)
	}
	if cfg.Worker.PaymentCheckMaxAge, err = parseDurationEnv("PAYMENT_CHECK_MAX_AGE", "30m"); err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_CHECK_MAX_AGE: %w", err)
	}

	// Basic validation for DB parameters — keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
