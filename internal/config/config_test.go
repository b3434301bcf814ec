package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("AI_MAX_BATCH_COUNT", "5")
	t.Setenv("AI_DEFAULT_TEMPERATURE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "memory", cfg.App.Storage)
	assert.Equal(t, 5, cfg.Generation.MaxBatchCount)
	assert.Equal(t, 0.7, cfg.Generation.DefaultTemperature)
	assert.Equal(t, 1000, cfg.Generation.DefaultMaxTokens)
}

func TestResolveJwtSecret(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "development"}}
	secret, usedDefault, ok := cfg.ResolveJwtSecret()
	assert.True(t, ok)
	assert.True(t, usedDefault)
	assert.Equal(t, devJwtSecret, secret)

	cfg.App.Environment = "production"
	_, _, ok = cfg.ResolveJwtSecret()
	assert.False(t, ok)

	cfg.Auth.JwtSecret = "s3cret"
	secret, usedDefault, ok = cfg.ResolveJwtSecret()
	assert.True(t, ok)
	assert.False(t, usedDefault)
	assert.Equal(t, "s3cret", secret)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	assert.True(t, OtelEnabled())

	t.Setenv("OTEL_ENABLED", "nope")
	assert.False(t, OtelEnabled())
}
