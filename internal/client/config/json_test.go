package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeTempConfig(t, `{
		"api_base_url": "http://api.internal:5001",
		"request_timeout": "15s",
		"health_check_interval": "1m",
		"session_file": "/tmp/console-session.json"
	}`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://api.internal:5001", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Minute, c.HealthCheckInterval)
	assert.Equal(t, "/tmp/console-session.json", c.SessionFile)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"api_base_url": "http://api.internal:5001"}`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://api.internal:5001", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "session.json", c.SessionFile)
}

func TestParseJson_NoFlagDoesNothing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:5114", c.APIBaseURL)
}
