package config

import (
	"os"
	"strings"
	"testing"
)

var configEnvVars = []string{
	"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DATABASE_URL",
	"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PASSWORD", "DB_SLOW_QUERY_MS",
	"DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE",
}

func cleanupTestEnv() {
	for _, v := range configEnvVars {
		os.Unsetenv(v)
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
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	os.Setenv("TEST_BAD_INT", "forty-two")
	os.Setenv("TEST_BOOL", "true")
	defer func() {
		os.Unsetenv("TEST_INT")
		os.Unsetenv("TEST_BAD_INT")
		os.Unsetenv("TEST_BOOL")
	}()

	if got := GetEnvAsType("TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvAsType(int) = %d, expected 42", got)
	}
	if got := GetEnvAsType("TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvAsType(bad int) = %d, expected default 7", got)
	}
	if got := GetEnvAsType("TEST_BOOL", false); !got {
		t.Error("GetEnvAsType(bool) = false, expected true")
	}
	if got := GetEnvAsType("TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsType(missing) = %s, expected fallback", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "0.0.0.0")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DB_DRIVER", "postgres")
		os.Setenv("DATABASE_URL", "postgres://restaurant:secret@db:5432/restaurant")
		os.Setenv("DEFAULT_PAGE_SIZE", "10")
		os.Setenv("MAX_PAGE_SIZE", "50")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.Database.Driver != "postgres" {
			t.Errorf("Database.Driver = %s, expected postgres", config.Database.Driver)
		}
		if config.Database.DSN() != "postgres://restaurant:secret@db:5432/restaurant" {
			t.Errorf("Database.DSN() = %s, expected DATABASE_URL", config.Database.DSN())
		}
		if page := config.DefaultPage(); page.PageSize != 10 || page.PageNo != 1 {
			t.Errorf("DefaultPage() = %+v, expected size 10 on page 1", page)
		}
		if config.MaxPageSize != 50 {
			t.Errorf("MaxPageSize = %d, expected 50", config.MaxPageSize)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DATABASE_URL", "not-a-url")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when DATABASE_URL is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with non-positive default page size", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DEFAULT_PAGE_SIZE", "0")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DEFAULT_PAGE_SIZE is 0")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}
		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.LogLevel != "" {
			t.Errorf("LogLevel = %s, expected empty so the environment decides", config.LogLevel)
		}
		if config.Database.Driver != "sqlite" || config.Database.Path != "restaurant.sqlite" {
			t.Errorf("Database = %s, expected sqlite at restaurant.sqlite", config.Database.String())
		}
		if config.Database.SlowQueryThresholdMs != 200 {
			t.Errorf("SlowQueryThresholdMs = %d, expected default 200", config.Database.SlowQueryThresholdMs)
		}
		if config.DefaultPageSize != 20 || config.MaxPageSize != 100 {
			t.Errorf("page sizes = %d/%d, expected 20/100", config.DefaultPageSize, config.MaxPageSize)
		}
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	cleanupTestEnv()
	defer cleanupTestEnv()
	os.Setenv("DB_PASSWORD", "hunter2")
	os.Setenv("DATABASE_URL", "postgres://restaurant:hunter2@db:5432/restaurant")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if s := config.String(); strings.Contains(s, "hunter2") {
		t.Errorf("String() leaks the password: %s", s)
	}
}

func TestMaskDatabaseURL(t *testing.T) {
	masked := maskDatabaseURL("postgres://restaurant:hunter2@db:5432/restaurant")
	if strings.Contains(masked, "hunter2") {
		t.Errorf("maskDatabaseURL() = %s, password not masked", masked)
	}
	if maskDatabaseURL("") != "" {
		t.Error("maskDatabaseURL(\"\") should be empty")
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
