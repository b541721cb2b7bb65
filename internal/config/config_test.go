package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MIST_DEFAULT_HOST", "api.eu.mist.com")
	t.Setenv("CONTEXT_TTL", "90")
	t.Setenv("MIST_HTTP_TIMEOUT", "5s")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "api.eu.mist.com", cfg.Mist.DefaultHost)
	assert.Equal(t, 90*time.Second, cfg.Store.TTL)
	assert.Equal(t, 5*time.Second, cfg.Mist.Timeout)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "mist:context:", cfg.Store.KeyPrefix)
}

func TestGetEnvAsDurationFallback(t *testing.T) {
	t.Setenv("BROKEN_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("BROKEN_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsDuration("UNSET_DURATION_KEY", time.Minute))
}
