package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Planner configuration
	MinEligibleMeals   int
	PlanRateLimitPerHr int

	// Plan archive configuration
	S3BucketName string
	AWSRegion    string

	// Logging
	LogMode string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadPlannerConfig(cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment using ONLY environment variables
func loadCIConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", DriverPostgres)
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "mealmatch.db")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0 // This is a constant, not a secret
	cfg.LogMode = getEnv("LOG_MODE", "development")
}

// loadDevConfig loads configuration for development and test, preferring
// environment variables and falling back to Docker secrets and defaults
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = lookup("SERVER_PORT", "server_port", "8080")
	cfg.ServerHost = lookup("SERVER_HOST", "server_host", "localhost")
	cfg.DBDriver = lookup("DB_DRIVER", "db_driver", DriverPostgres)
	cfg.DBHost = lookup("DB_HOST", "db_host", "localhost")
	cfg.DBPort = lookup("DB_PORT", "db_port", "5432")
	cfg.DBUser = lookup("DB_USER", "db_user", "postgres")
	cfg.DBPassword = lookup("DB_PASSWORD", "db_password", "postgres")
	cfg.DBName = lookup("DB_NAME", "db_name", "mealmatch")
	cfg.DBSSLMode = lookup("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.SQLitePath = lookup("SQLITE_PATH", "sqlite_path", "mealmatch.db")
	cfg.RedisHost = lookup("REDIS_HOST", "redis_host", "localhost")
	cfg.RedisPort = lookup("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = lookup("REDIS_PASSWORD", "redis_password", "")
	cfg.RedisURL = lookup("REDIS_URL", "redis_url", "")
	cfg.RedisDB = 0 // This is a constant, not a secret
	cfg.LogMode = getEnv("LOG_MODE", "development")
}

// loadProdConfig loads configuration for production environment using Docker secrets for credentials
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = lookup("SERVER_PORT", "server_port", "8080")
	cfg.ServerHost = lookup("SERVER_HOST", "server_host", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", DriverPostgres)
	cfg.DBHost = readSecret("db_host")
	cfg.DBPort = readSecret("db_port")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = readSecret("db_name")
	cfg.DBSSLMode = readSecret("db_ssl_mode")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "mealmatch.db")
	cfg.RedisHost = readSecret("redis_host")
	cfg.RedisPort = readSecret("redis_port")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.RedisDB = 0 // This is a constant, not a secret
	cfg.LogMode = getEnv("LOG_MODE", "production")
}

// loadPlannerConfig loads settings shared by every environment
func loadPlannerConfig(cfg *Config) error {
	var err error
	if cfg.MinEligibleMeals, err = getEnvInt("MIN_ELIGIBLE_MEALS", 20); err != nil {
		return err
	}
	if cfg.PlanRateLimitPerHr, err = getEnvInt("PLAN_RATE_LIMIT_PER_HOUR", 30); err != nil {
		return err
	}
	cfg.S3BucketName = os.Getenv("S3_BUCKET_NAME")
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	return nil
}

// lookup returns the environment variable, then the Docker secret, then def
func lookup(envName, secretName, def string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return def
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func getEnvInt(name string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, ValidationError{Field: name, Message: fmt.Sprintf("must be an integer, got %q", v)}
	}
	return i, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
