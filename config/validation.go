package config

import (
	"errors"
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

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []error

	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("SERVER_PORT", cfg.ServerPort)

	switch cfg.DBDriver {
	case DriverPostgres:
		require("DB_HOST", cfg.DBHost)
		require("DB_PORT", cfg.DBPort)
		require("DB_NAME", cfg.DBName)
		require("DB_USER", cfg.DBUser)
		if env == CI || env == Production {
			require("DB_PASSWORD", cfg.DBPassword)
		}
	case DriverSQLite:
		require("SQLITE_PATH", cfg.SQLitePath)
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.RedisURL == "" {
		require("REDIS_HOST", cfg.RedisHost)
		require("REDIS_PORT", cfg.RedisPort)
	}

	if cfg.MinEligibleMeals < 1 {
		errs = append(errs, ValidationError{Field: "MIN_ELIGIBLE_MEALS", Message: "must be at least 1"})
	}
	if cfg.PlanRateLimitPerHr < 1 {
		errs = append(errs, ValidationError{Field: "PLAN_RATE_LIMIT_PER_HOUR", Message: "must be at least 1"})
	}

	return errors.Join(errs...)
}
