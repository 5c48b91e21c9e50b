package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_ssl_mode"`
	DBPath     string `json:"db_path"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret  string        `json:"jwt_secret"`
	SessionTTL time.Duration `json:"session_ttl"`

	// AdminEmails is the allow-list of addresses permitted to sign up or
	// sign in. The list is injected into the actions at construction time
	// rather than read from ambient globals.
	AdminEmails []string `json:"admin_emails"`

	// Redis configuration (spot-rate cache)
	RedisAddr     string `json:"redis_addr"`
	RedisDB       int    `json:"redis_db"`
	RedisPassword string `json:"redis_password"`

	// Metal-price API configuration
	GoldAPIBaseURL string        `json:"gold_api_base_url"`
	GoldAPIKey     string        `json:"gold_api_key"`
	RateCacheTTL   time.Duration `json:"rate_cache_ttl"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], AdminEmails: %d entries, RedisAddr: %s, GoldAPIBaseURL: %s}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBName, c.DBUser, c.LogLevel, len(c.AdminEmails), c.RedisAddr, c.GoldAPIBaseURL)
}

// IsAdminEmail reports whether email is in the configured allow-list.
// Comparison is case-insensitive on the address as a whole.
func (c *Config) IsAdminEmail(email string) bool {
	for _, allowed := range c.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, err
	}

	jwtSecret := GetEnvWithDefault("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	sessionTTL, err := time.ParseDuration(GetEnvWithDefault("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	rateCacheTTL, err := time.ParseDuration(GetEnvWithDefault("RATE_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL: %w", err)
	}

	config := &Config{
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:       GetEnvWithDefault("DB_DRIVER", "sqlite"),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "aurum"),
		DBUser:         GetEnvWithDefault("DB_USER", "aurum"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:         GetEnvWithDefault("DB_PATH", "aurum.sqlite"),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:      jwtSecret,
		SessionTTL:     sessionTTL,
		AdminEmails:    ParseEmailList(GetEnvWithDefault("ADMIN_EMAILS", "")),
		RedisAddr:      GetEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisDB:        GetEnvAsType("REDIS_DB", 0),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		GoldAPIBaseURL: GetEnvWithDefault("GOLD_API_BASE_URL", "https://www.goldapi.io/api"),
		GoldAPIKey:     os.Getenv("GOLD_API_KEY"),
		RateCacheTTL:   rateCacheTTL,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// ParseEmailList splits a comma-separated list of addresses, trimming
// whitespace and dropping empty entries.
func ParseEmailList(raw string) []string {
	if raw == "" {
		return nil
	}
	var emails []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
