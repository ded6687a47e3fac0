package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BLOG_DATABASE_USER", "blog")
	t.Setenv("BLOG_DATABASE_PASSWORD", "secret")
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"BLOG_DATABASE_HOST":                       "database.host",
		"BLOG_DATABASE_CONN_MAX_IDLE_TIME":         "database.conn_max_idle_time",
		"BLOG_SERVER_READ_TIMEOUT":                 "server.read_timeout",
		"BLOG_PRIMARY_ENV":                         "primary.env",
		"BLOG_REDIS_ADDRESS":                       "redis.address",
		"BLOG_INTEGRATION_RESEND_API_KEY":          "integration.resend_api_key",
		"BLOG_OBSERVABILITY_LOGGING_LEVEL":         "observability.logging.level",
		"BLOG_OBSERVABILITY_NEW_RELIC_LICENSE_KEY": "observability.new_relic.license_key",
		"BLOG_OBSERVABILITY_HEALTH_CHECKS_TIMEOUT": "observability.health_checks.timeout",
		"BLOG_OBSERVABILITY_SERVICE_NAME":          "observability.service_name",
		"BLOG_UNKNOWN":                             "unknown",
	}
	for in, want := range cases {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Primary.Env)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "blog_db", cfg.Database.Name)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.False(t, cfg.Redis.Enabled())
		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "development", cfg.Observability.Environment)
	})

	t.Run("Overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOG_PRIMARY_ENV", "production")
		t.Setenv("BLOG_DATABASE_HOST", "db.internal")
		t.Setenv("BLOG_DATABASE_PORT", "6543")
		t.Setenv("BLOG_DATABASE_AUTO_MIGRATE", "false")
		t.Setenv("BLOG_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
		t.Setenv("BLOG_REDIS_ADDRESS", "redis:6379")
		t.Setenv("BLOG_OBSERVABILITY_LOGGING_LEVEL", "warn")
		t.Setenv("BLOG_OBSERVABILITY_HEALTH_CHECKS_TIMEOUT", "2s")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.False(t, cfg.Database.AutoMigrate)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, "warn", cfg.Observability.Logging.Level)
		assert.Equal(t, "json", cfg.Observability.Logging.Format)
		assert.Equal(t, 2*time.Second, cfg.Observability.HealthChecks.Timeout)
		assert.Equal(t, "production", cfg.Observability.Environment)
		assert.True(t, cfg.Observability.IsProduction())
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		t.Setenv("BLOG_DATABASE_USER", "")
		t.Setenv("BLOG_DATABASE_PASSWORD", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOG_OBSERVABILITY_LOGGING_LEVEL", "loud")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})
}

func TestObservabilityConfig(t *testing.T) {
	t.Run("GetLogLevelDefaultsByEnvironment", func(t *testing.T) {
		c := DefaultObservabilityConfig()
		c.Logging.Level = ""

		c.Environment = "production"
		assert.Equal(t, "info", c.GetLogLevel())

		c.Environment = "development"
		assert.Equal(t, "debug", c.GetLogLevel())
	})

	t.Run("ShouldCheck", func(t *testing.T) {
		c := DefaultObservabilityConfig()
		assert.True(t, c.ShouldCheck("database"))
		assert.False(t, c.ShouldCheck("kafka"))

		c.HealthChecks.Enabled = false
		assert.False(t, c.ShouldCheck("database"))
	})

	t.Run("RejectsNegativeSlowQueryThreshold", func(t *testing.T) {
		c := DefaultObservabilityConfig()
		c.Logging.SlowQueryThreshold = -time.Second
		assert.Error(t, c.Validate())
	})
}
