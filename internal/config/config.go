package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver     string `json:"db_driver"`
	DBURI        string `json:"db_uri"`
	DBPath       string `json:"db_path"`
	DBHost       string `json:"db_host"`
	DBPort       string `json:"db_port"`
	DBName       string `json:"db_name"`
	DBUser       string `json:"db_user"`
	DBPassword   string `json:"db_password"`
	DBSSLMode    string `json:"db_sslmode"`
	DBMaxRetries int    `json:"db_max_retries"`
	DBSeed       bool   `json:"db_seed"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration
	AllowedOrigins []string `json:"allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBURI: %s, DBPath: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, DBMaxRetries: %d, DBSeed: %t, LogLevel: %s, AllowedOrigins: %v}",
		c.Environment, c.Port, c.Host, c.DBDriver, maskDatabaseURL(c.DBURI), c.DBPath, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBSSLMode, c.DBMaxRetries, c.DBSeed, c.LogLevel, c.AllowedOrigins)
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Database builds the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:     c.DBDriver,
		URI:        c.DBURI,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSSLMode,
		Path:       c.DBPath,
		MaxRetries: c.DBMaxRetries,
	}
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5555"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s (supported: postgres, sqlite)", driver)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		Port:           port,
		Host:           GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:       driver,
		DBURI:          GetEnvWithDefault("DB_URI", ""),
		DBPath:         GetEnvWithDefault("DB_PATH", "app.db"),
		DBHost:         GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:         GetEnvWithDefault("DB_PORT", "5432"),
		DBName:         GetEnvWithDefault("DB_NAME", "restaurants"),
		DBUser:         GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:     GetEnvWithDefault("DB_PASSWORD", "postgres"),
		DBSSLMode:      GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBMaxRetries:   GetEnvAsType("DB_MAX_RETRIES", 5),
		DBSeed:         GetEnvAsType("DB_SEED", true),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps the application environment to a log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
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

// splitList splits a comma-separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
