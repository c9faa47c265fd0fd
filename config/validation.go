package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value required to start the server is
// present. API keys for the model provider are validated where their
// clients are constructed, not here.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "ServerPort", Message: "server port is required"}
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		return ValidationError{Field: "Database", Message: "database host, port and name are required"}
	}
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		return ValidationError{Field: "Redis", Message: "redis host and port (or REDIS_URL) are required"}
	}
	if IsProduction() && cfg.JWTSecret == "" {
		return ValidationError{Field: "JWTSecret", Message: "JWT secret is required in production"}
	}
	return nil
}
