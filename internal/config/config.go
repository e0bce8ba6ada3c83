package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Generator GeneratorConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// GeneratorConfig holds the external shift generator configuration
type GeneratorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; values come from the
	// process environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftnavi"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Generator configuration
	config.Generator = GeneratorConfig{
		APIKey:  getEnv("GENERATOR_API_KEY", ""),
		BaseURL: getEnv("GENERATOR_BASE_URL", ""),
		Model:   getEnv("GENERATOR_MODEL", "gpt-4o-mini"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Generator.APIKey == "" {
		return fmt.Errorf("GENERATOR_API_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
