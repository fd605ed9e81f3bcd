package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backend identifiers accepted in STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	Storage StorageConfig
	DB      DatabaseConfig
	Redis   RedisConfig
	Admin   AdminConfig
	CORS    CORSConfig
}

// StorageConfig selects the persistence backend and the namespace key the
// inventory document is stored under.
type StorageConfig struct {
	Backend string // file | redis | postgres
	Key     string // single fixed namespace key
	File    string // path for the file backend
}

// DatabaseConfig contains PostgreSQL connection parameters (postgres backend only).
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig contains Redis connection parameters (redis backend only).
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AdminConfig holds the single admin login used for mutating endpoints.
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt
}

// CORSConfig lists hosts allowed as browser origins.
type CORSConfig struct {
	AllowedHosts []string
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
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// Storage
	cfg.Storage = StorageConfig{
		Backend: getEnv("STORAGE_BACKEND", BackendFile),
		Key:     getEnv("STORAGE_KEY", "inventory:products"),
		File:    getEnv("STORAGE_FILE", "data/inventory.json"),
	}

	// Database (postgres backend)
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Redis (redis backend)
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Admin login
	cfg.Admin = AdminConfig{
		Email:        getEnv("ADMIN_EMAIL", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// CORS
	cfg.CORS = CORSConfig{
		AllowedHosts: splitCSV(getEnv("CORS_ALLOWED_HOSTS", "localhost:3000,127.0.0.1:3000")),
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.File == "" {
			return nil, errors.New("STORAGE_FILE must be set for the file backend")
		}
	case BackendRedis:
		// Redis defaults are usable as-is.
	case BackendPostgres:
		if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
			return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q: expected file, redis, or postgres", cfg.Storage.Backend)
	}

	// Validate JWT_SECRET
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set for authentication")
	}
	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		return nil, errors.New("admin login incomplete: ensure ADMIN_EMAIL and ADMIN_PASSWORD_HASH are set")
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

// splitCSV splits a comma-separated value into trimmed, non-empty entries.
func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
