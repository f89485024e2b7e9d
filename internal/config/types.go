// Package config provides configuration loading and environment
// validation for the user service.
package config

import "time"

// Config represents the application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int    // Server port number
	Host         string // Server host address
	ReadTimeout  int    // Read timeout in seconds
	WriteTimeout int    // Write timeout in seconds
	IdleTimeout  int    // Idle timeout in seconds
	MaxBodyBytes int64  // JSON request body size limit in bytes
}

// DatabaseConfig holds document-store configuration. URI carries a
// <db_password> placeholder which is substituted with Password when
// connecting, so the secret never appears in the URI template itself.
type DatabaseConfig struct {
	URI      string
	Password string
	Name     string // Database name
	Timeout  int    // Connect/ping timeout in seconds
}

// JWTConfig holds token-signing configuration.
type JWTConfig struct {
	SecretKey        string
	ExpiresIn        time.Duration
	RefreshSecretKey string
	RefreshExpiresIn time.Duration
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string // Log level (debug, info, warn, error)
	Format string // Log format (json, console)
}

// ApplicationConfig holds application-specific configuration.
type ApplicationConfig struct {
	Environment     string // Environment (development, staging, production, test)
	ShutdownTimeout int    // Shutdown timeout in seconds
}

// IsDevelopment reports whether the service runs in development mode.
// Stack traces are only ever attached to responses in this mode.
func (c *Config) IsDevelopment() bool {
	return c.Application.Environment == "development"
}
