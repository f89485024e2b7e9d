package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	msg := "configuration validation errors:\n"
	for _, err := range ve {
		msg += fmt.Sprintf("  - %s\n", err.Error())
	}
	return msg
}

// RequiredEnvironmentVariables defines required environment variables.
// The process refuses to start when any of them is missing.
var RequiredEnvironmentVariables = []string{
	"PORT",
	"DB_URI",
	"DB_PASS",
	"JWT_SECRET_KEY",
	"JWT_EXPIRES_IN",
	"JWT_REFRESH_SECRET_KEY",
	"JWT_REFRESH_EXPIRES_IN",
}

// OptionalEnvironmentVariables defines optional environment variables with defaults.
var OptionalEnvironmentVariables = map[string]string{
	"APP_HOST":             "0.0.0.0",
	"DB_NAME":              "users",
	"DB_TIMEOUT":           "10",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"ENVIRONMENT":          "development",
	"SERVER_READ_TIMEOUT":  "30",
	"SERVER_WRITE_TIMEOUT": "30",
	"SERVER_IDLE_TIMEOUT":  "120",
	"SHUTDOWN_TIMEOUT":     "30",
	"MAX_BODY_BYTES":       "51200",
}

// minSecretLength is the minimum accepted token-signing secret length.
const minSecretLength = 10

// ValidateRequired validates required environment variables.
func ValidateRequired() ValidationErrors {
	var errs ValidationErrors

	for _, envVar := range RequiredEnvironmentVariables {
		if value := os.Getenv(envVar); value == "" {
			errs = append(errs, ValidationError{
				Field:   envVar,
				Value:   "",
				Message: "required environment variable is not set",
			})
		}
	}

	return errs
}

// ValidatePort validates that a port number is in valid range.
func ValidatePort(envVar string) error {
	portStr := os.Getenv(envVar)
	if portStr == "" {
		return nil // required-variable check reports the absence
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return ValidationError{
			Field:   envVar,
			Value:   portStr,
			Message: "must be a valid integer",
		}
	}

	if port < 1 || port > 65535 {
		return ValidationError{
			Field:   envVar,
			Value:   portStr,
			Message: "must be between 1 and 65535",
		}
	}

	return nil
}

// ValidateDatabaseURI validates the document-store URI template. The URI
// must either embed the <db_password> placeholder or use the SRV scheme
// which carries credentials out of band.
func ValidateDatabaseURI() error {
	uri := os.Getenv("DB_URI")
	if uri == "" {
		return nil
	}

	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return ValidationError{
			Field:   "DB_URI",
			Value:   uri,
			Message: "must be a mongodb:// or mongodb+srv:// URI",
		}
	}

	if !strings.Contains(uri, "<db_password>") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return ValidationError{
			Field:   "DB_URI",
			Value:   uri,
			Message: "must contain the <db_password> placeholder",
		}
	}

	return nil
}

// ValidateSecret validates a token-signing secret.
func ValidateSecret(envVar string) error {
	secret := os.Getenv(envVar)
	if secret == "" {
		return nil
	}

	if len(secret) < minSecretLength {
		return ValidationError{
			Field:   envVar,
			Value:   strings.Repeat("*", len(secret)),
			Message: fmt.Sprintf("must be at least %d characters", minSecretLength),
		}
	}

	return nil
}

// ValidateDuration validates a duration environment variable.
func ValidateDuration(envVar string) error {
	value := os.Getenv(envVar)
	if value == "" {
		return nil
	}

	if _, err := time.ParseDuration(value); err != nil {
		return ValidationError{
			Field:   envVar,
			Value:   value,
			Message: "must be a valid duration (e.g. 15m, 24h)",
		}
	}

	return nil
}

// ValidateLogLevel validates log level value.
func ValidateLogLevel() error {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return nil
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[level] {
		return ValidationError{
			Field:   "LOG_LEVEL",
			Value:   level,
			Message: "must be one of: debug, info, warn, error",
		}
	}

	return nil
}

// ValidateEnvironmentType validates environment type.
func ValidateEnvironmentType() error {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return nil
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}

	if !validEnvs[env] {
		return ValidationError{
			Field:   "ENVIRONMENT",
			Value:   env,
			Message: "must be one of: development, staging, production, test",
		}
	}

	return nil
}

// ValidateAll performs comprehensive configuration validation.
func ValidateAll() error {
	var errs ValidationErrors

	if requiredErrs := ValidateRequired(); len(requiredErrs) > 0 {
		errs = append(errs, requiredErrs...)
	}

	checks := []error{
		ValidatePort("PORT"),
		ValidateDatabaseURI(),
		ValidateSecret("JWT_SECRET_KEY"),
		ValidateSecret("JWT_REFRESH_SECRET_KEY"),
		ValidateDuration("JWT_EXPIRES_IN"),
		ValidateDuration("JWT_REFRESH_EXPIRES_IN"),
		ValidateLogLevel(),
		ValidateEnvironmentType(),
	}

	for _, err := range checks {
		if validationErr, ok := err.(ValidationError); ok {
			errs = append(errs, validationErr)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
