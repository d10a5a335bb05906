package database

import (
	"fmt"
	"net/url"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URI is a complete DSN; when set it takes precedence over the other fields
	URI string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxRetries is the number of connection attempts, defaults to 5
	MaxRetries int
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	uri := ""
	if c.URI != "" {
		uri = "[REDACTED]"
	}
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URI: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, uri, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	if c.URI != "" {
		if normalizeDriver(c.Driver) == "sqlite" {
			return strings.TrimPrefix(c.URI, "sqlite:///")
		}
		return c.URI
	}
	switch normalizeDriver(c.Driver) {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite":
		return c.Path
	default:
		return ""
	}
}

// normalizeDriver maps driver aliases to their canonical name
func normalizeDriver(driver string) string {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "":
		return "sqlite"
	default:
		return strings.ToLower(driver)
	}
}

// maskedURI hides the password of a URI style DSN for logging
func maskedURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.User == nil {
		return uri
	}
	parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	return parsed.String()
}
