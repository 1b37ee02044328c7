package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	HSData    HSDataConfig
	Cache     CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port       int
	ServiceURL string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerHour int
}

// HSDataConfig holds the HS code dataset source configuration
type HSDataConfig struct {
	Type        string // "local" or "s3"
	LocalPath   string
	S3Endpoint  string
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Key       string
}

// CacheConfig holds verification cache configuration
type CacheConfig struct {
	VerificationTTLDays int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnvOrDefault("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       serverPort,
			ServiceURL: getEnvOrDefault("SERVICE_URL", fmt.Sprintf("http://localhost:%d", serverPort)),
		},
		CORS: CORSConfig{
			AllowedOrigins:   parseCommaSeparated(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
			AllowedMethods:   parseCommaSeparated(getEnvOrDefault("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders:   parseCommaSeparated(getEnvOrDefault("CORS_ALLOWED_HEADERS", "Content-Type,Authorization")),
			AllowCredentials: getBoolOrDefault("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getIntOrDefault("CORS_MAX_AGE", 3600),
		},
		RateLimit: RateLimitConfig{
			Enabled:         getBoolOrDefault("RATE_LIMIT_ENABLED", true),
			RequestsPerHour: getIntOrDefault("RATE_LIMIT_REQUESTS_PER_HOUR", 100),
		},
		HSData: HSDataConfig{
			Type:        getEnvOrDefault("HS_DATA_SOURCE", "local"),
			LocalPath:   getEnvOrDefault("HS_DATA_LOCAL_PATH", "./data/hs_codes.json"),
			S3Endpoint:  os.Getenv("HS_DATA_S3_ENDPOINT"),
			S3Bucket:    getEnvOrDefault("HS_DATA_S3_BUCKET", "africompliance-data"),
			S3Region:    getEnvOrDefault("HS_DATA_S3_REGION", "af-south-1"),
			S3AccessKey: os.Getenv("HS_DATA_S3_ACCESS_KEY"),
			S3SecretKey: os.Getenv("HS_DATA_S3_SECRET_KEY"),
			S3Key:       getEnvOrDefault("HS_DATA_S3_KEY", "hs_codes.json"),
		},
		Cache: CacheConfig{
			VerificationTTLDays: getIntOrDefault("VERIFICATION_CACHE_TTL_DAYS", 90),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	switch c.HSData.Type {
	case "local":
		if c.HSData.LocalPath == "" {
			return fmt.Errorf("HS_DATA_LOCAL_PATH is required")
		}
	case "s3":
		if c.HSData.S3Bucket == "" {
			return fmt.Errorf("HS_DATA_S3_BUCKET is required")
		}
		if c.HSData.S3Key == "" {
			return fmt.Errorf("HS_DATA_S3_KEY is required")
		}
	default:
		return fmt.Errorf("invalid HS_DATA_SOURCE: %s", c.HSData.Type)
	}

	if c.RateLimit.RequestsPerHour <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_HOUR must be positive")
	}
	return nil
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntOrDefault returns the integer value of an environment variable or a default value
func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolOrDefault returns the boolean value of an environment variable or a default value
func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings
func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
