package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 600*time.Second, cfg.Cache.EntityTTL)
	assert.Equal(t, time.Second, cfg.Worker.DebounceWindow)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
	assert.Equal(t, "tournament", cfg.Metrics.Namespace)
	assert.Equal(t, "en", cfg.Locale.Default)
	assert.True(t, cfg.Database.RunMigrations)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TTL_ENTITY", "30s")
	t.Setenv("LOCALE_DEFAULT", "pt-BR")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Cache.EntityTTL)
	assert.Equal(t, "pt-BR", cfg.Locale.Default)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("WORKER_DEBOUNCE_WINDOW", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKER_DEBOUNCE_WINDOW")
}

func TestLoad_InvalidMaxRetries(t *testing.T) {
	t.Setenv("WORKER_MAX_RETRIES", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKER_MAX_RETRIES")
}

func TestLoad_ReportsEveryInvalidSetting(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "fast")
	t.Setenv("CACHE_TTL_ENTITY", "forever")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_READ_TIMEOUT")
	assert.Contains(t, err.Error(), "CACHE_TTL_ENTITY")
}

func TestConfig_DSNAndRedisAddr(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"},
		Redis:    RedisConfig{Host: "cache", Port: "6379"},
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDSN())
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}
