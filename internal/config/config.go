package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/best-before-api/internal/database"
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
	Environment string `json:"environment"`

	// Server Configuration
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Database configuration
	DBDriver    string `json:"db_driver"`
	DatabaseURL string `json:"database_url"`
	DBHost      string `json:"db_host"`
	DBPort      string `json:"db_port"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBSSLMode   string `json:"db_sslmode"`
	DBPath      string `json:"db_path"`

	// Logging configuration, empty means derived from Environment
	LogLevel string `json:"log_level"`

	// API behaviour
	DefaultListLimit int     `json:"default_list_limit"`
	RateLimitRPS     float64 `json:"rate_limit_rps"`
	RateLimitBurst   int     `json:"rate_limit_burst"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, DefaultListLimit: %d, RateLimitRPS: %g, RateLimitBurst: %d}",
		c.Environment, c.Port, c.Host, c.DBDriver, database.MaskURL(c.DatabaseURL), c.DBHost, c.DBName, c.DBUser, c.DBPath, c.LogLevel, c.DefaultListLimit, c.RateLimitRPS, c.RateLimitBurst)
}

// Address is the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%v:%d", c.Host, c.Port)
}

// Database returns the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		URL:      c.DatabaseURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// LogrusLevel resolves the log level: an explicit LOG_LEVEL wins, otherwise the environment decides
func (c *Config) LogrusLevel() logrus.Level {
	if c.LogLevel != "" {
		if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
			return level
		}
	}
	return LevelForEnvironment(c.Environment)
}

// LevelForEnvironment maps APP_ENV to a log level
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

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like DatabaseURL and numeric settings
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	port, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	listLimit, err := getEnvInt("FOODS_DEFAULT_LIMIT", 500)
	if err != nil {
		return nil, err
	}
	if listLimit <= 0 {
		return nil, fmt.Errorf("FOODS_DEFAULT_LIMIT must be positive, got %d", listLimit)
	}
	burst, err := getEnvInt("RATE_LIMIT_BURST", 40)
	if err != nil {
		return nil, err
	}
	shutdownSeconds, err := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	rps, err := strconv.ParseFloat(GetEnvWithDefault("RATE_LIMIT_RPS", "20"), 64)
	if err != nil || rps < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a non-negative number")
	}

	config := &Config{
		Environment:      GetEnvWithDefault("APP_ENV", "development"),
		Port:             port,
		Host:             GetEnvWithDefault("APP_HOST", "localhost"),
		ShutdownTimeout:  time.Duration(shutdownSeconds) * time.Second,
		DBDriver:         strings.ToLower(GetEnvWithDefault("DB_DRIVER", "postgres")),
		DatabaseURL:      GetEnvWithDefault("DATABASE_URL", ""),
		DBHost:           GetEnvWithDefault("DB_HOST", ""),
		DBPort:           GetEnvWithDefault("DB_PORT", "5432"),
		DBName:           GetEnvWithDefault("DB_NAME", "foods"),
		DBUser:           GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:       GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:        GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:           GetEnvWithDefault("DB_PATH", "foods.sqlite"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		DefaultListLimit: listLimit,
		RateLimitRPS:     rps,
		RateLimitBurst:   burst,
	}

	if err := config.validateDatabase(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func (c *Config) validateDatabase() error {
	switch c.DBDriver {
	case "postgres", "postgresql":
		if c.DatabaseURL == "" && c.DBHost == "" {
			return errors.New("DATABASE_URL environment variable is required for the postgres driver")
		}
		if c.DatabaseURL != "" {
			// validate URL with net/url
			if _, err := url.ParseRequestURI(c.DatabaseURL); err != nil {
				return fmt.Errorf("invalid DATABASE_URL format: %s", database.MaskURL(c.DatabaseURL))
			}
		}
	case "sqlite", "sqlite3":
		if c.DBPath == "" {
			return errors.New("DB_PATH environment variable is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, sqlite)", c.DBDriver)
	}
	return nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, err := strconv.Atoi(GetEnvWithDefault(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}
