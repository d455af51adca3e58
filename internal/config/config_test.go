package config

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"APP_ENV", "APP_PORT", "APP_HOST", "SHUTDOWN_TIMEOUT_SECONDS",
	"DB_DRIVER", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_PATH",
	"LOG_LEVEL", "FOODS_DEFAULT_LIMIT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, GetEnvWithDefault(tt.key, tt.defaultValue))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("DATABASE_URL", "postgres://foods:secret@db:5432/foods?sslmode=disable")
		t.Setenv("FOODS_DEFAULT_LIMIT", "50")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "0.0.0.0:9000", config.Address())
		assert.Equal(t, "postgres", config.DBDriver)
		assert.Equal(t, 50, config.DefaultListLimit)
		assert.Equal(t, 2.5, config.RateLimitRPS)
		assert.Equal(t, 5, config.RateLimitBurst)
		assert.Equal(t, 3*time.Second, config.ShutdownTimeout)
		assert.Equal(t, logrus.WarnLevel, config.LogrusLevel())

		db := config.Database()
		assert.Equal(t, "postgres://foods:secret@db:5432/foods?sslmode=disable", db.DSN())
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")
		t.Setenv("DB_DRIVER", "sqlite")

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should require a connection string for postgres", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should reject unknown driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("should reject non-positive list limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("FOODS_DEFAULT_LIMIT", "0")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "sqlite")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 8080, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "development", config.Environment)
		assert.Equal(t, "foods.sqlite", config.DBPath)
		assert.Equal(t, 500, config.DefaultListLimit)
		assert.Equal(t, float64(20), config.RateLimitRPS)
		assert.Equal(t, 40, config.RateLimitBurst)
		assert.Equal(t, logrus.DebugLevel, config.LogrusLevel())
	})
}

func TestStringMasksSecrets(t *testing.T) {
	config := &Config{DatabaseURL: "postgres://foods:hunter2@db:5432/foods", DBPassword: "hunter2"}
	assert.NotContains(t, config.String(), "hunter2")
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
