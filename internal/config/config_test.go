package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CorsAllowedOrigins)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 168, cfg.JWT.ExpirationHours)
	assert.Equal(t, "tailor-backend", cfg.JWT.Issuer)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "tailor_db", cfg.Database.Name)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "tailor")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "tailor_test")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "tailor", cfg.Database.User)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "tailor_test", cfg.Database.Name)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoadBadDBPortIgnored(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5432, cfg.Database.Port)
}
