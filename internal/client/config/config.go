package config

import "time"

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend REST API.
//   - RequestTimeout: fixed timeout applied to every outbound request.
//   - HealthCheckInterval: how often the console probes backend reachability.
//   - SessionFile: path of the JSON file persisting token/user/expiry.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	HealthCheckInterval time.Duration
	SessionFile         string
}

// LoadDefaults populates c with development defaults. The base URL matches
// the fixed local development host used when no configuration is present.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5114"
	c.RequestTimeout = 10 * time.Second
	c.HealthCheckInterval = 30 * time.Second
	c.SessionFile = "session.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
