package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// URL is a full PostgreSQL connection string. When set it takes precedence
	// over the individual PostgreSQL fields.
	URL string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string

	// MaxRetries bounds connection attempts; 0 means the default of 5
	MaxRetries int
	// RetryDelay is the wait before the second attempt, doubling after each failure; 0 means 1s
	RetryDelay time.Duration
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, URL: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, MaskURL(c.URL), c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// normalizedDriver maps driver aliases to "postgres" or "sqlite"
func (c *DatabaseConfig) normalizedDriver() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3", "":
		return "sqlite"
	default:
		return strings.ToLower(c.Driver)
	}
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.normalizedDriver() {
	case "postgres":
		if c.URL != "" {
			return c.URL
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite":
		if strings.Contains(c.Path, "?") {
			return c.Path
		}
		return c.Path + "?_busy_timeout=5000"
	default:
		return ""
	}
}

// MigrationURL builds the URL golang-migrate uses to reach the same database
func (c *DatabaseConfig) MigrationURL() string {
	switch c.normalizedDriver() {
	case "postgres":
		if c.URL != "" {
			return c.URL
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     c.Host + ":" + c.Port,
			Path:     "/" + c.Name,
			RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
		}
		return u.String()
	case "sqlite":
		return "sqlite3://" + c.Path
	default:
		return ""
	}
}

// SqlxDriverName returns the driver name sqlx uses to pick a bind variable style
func (c *DatabaseConfig) SqlxDriverName() string {
	if c.normalizedDriver() == "postgres" {
		return "pgx"
	}
	return "sqlite3"
}

// MaskURL replaces the password of a connection URL with [REDACTED]
func MaskURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
		}
	}

	return parsed.String()
}
