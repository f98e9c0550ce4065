package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5114", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 30*time.Second, c.HealthCheckInterval)
	assert.Equal(t, "session.json", c.SessionFile)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5114", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_OverridesBaseURL(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "http://backend:8080")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://backend:8080", c.APIBaseURL)
}

func TestParseEnv_AbsentKeepsDefault(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:5114", c.APIBaseURL)
}
