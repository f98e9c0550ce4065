package config

import (
	"flag"
	"os"
	"time"

	"github.com/adminsuite/tenantconsole/internal/flagx"
)

// EnvAPIBaseURL selects the backend host; absent configuration falls back to
// the fixed local development host from LoadDefaults.
const EnvAPIBaseURL = "CONSOLE_API_BASE_URL"

// parseEnv overlays Config with values from environment variables.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-i int      reachability check interval in seconds (default from Config)
//	-s string   session file path (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	healthCheckInterval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "reachability check interval (in seconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second
}
