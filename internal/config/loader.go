package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load loads and validates configuration from environment variables.
func Load() (*Config, error) {
	// .env is a development convenience; the environment always wins.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	if err := ValidateAll(); err != nil {
		return nil, fmt.Errorf("environment validation failed: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("PORT", 8080),
			Host:         getEnv("APP_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 120),
			MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", 51200)),
		},
		Database: DatabaseConfig{
			URI:      os.Getenv("DB_URI"),
			Password: os.Getenv("DB_PASS"),
			Name:     getEnv("DB_NAME", "users"),
			Timeout:  getEnvInt("DB_TIMEOUT", 10),
		},
		JWT: JWTConfig{
			SecretKey:        os.Getenv("JWT_SECRET_KEY"),
			ExpiresIn:        getEnvDuration("JWT_EXPIRES_IN", 15*time.Minute),
			RefreshSecretKey: os.Getenv("JWT_REFRESH_SECRET_KEY"),
			RefreshExpiresIn: getEnvDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Application: ApplicationConfig{
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT", 30),
		},
	}

	return config, nil
}

// getEnv gets environment variable with default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as integer with default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets environment variable as duration with default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
