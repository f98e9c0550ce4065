// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-i int      backend reachability check interval (seconds)
//	-s string   path of the persisted session file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5114",
//	  "request_timeout": "10s",
//	  "health_check_interval": "30s",
//	  "session_file": "session.json"
//	}
//
// Environment
//
// CONSOLE_API_BASE_URL overrides the base URL; when nothing sets it, the
// fixed local development host is used.
package config
