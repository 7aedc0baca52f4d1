package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration; RedisAddr empty disables login throttling
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Token signing
	JWTSecret string

	// Media storage
	MediaBucket string
	AWSRegion   string

	// CORS
	AllowedOrigins []string
}

// Load builds a Config from environment variables. In development a
// .env file in the working directory is honored.
func Load() (*Config, error) {
	if IsDevelopment() {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "recipeapp"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MediaBucket:    getEnv("MEDIA_BUCKET", "recipe-app-media"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.JWTSecret == "" {
		if IsProduction() {
			errs = append(errs, "JWT_SECRET is required in production")
		} else {
			cfg.JWTSecret = "insecure-dev-secret"
		}
	}
	if IsProduction() && cfg.DBPassword == "" {
		errs = append(errs, "DB_PASSWORD is required in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
