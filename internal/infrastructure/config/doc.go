// Package config loads server configuration.
//
// Values are layered: Default(), then an optional YAML or TOML file, then
// environment variables.
//
// Environment Variables:
//   - PORT, HOST, SHUTDOWN_TIMEOUT (seconds)
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CORS_ORIGINS (comma separated)
//   - MAX_FACTORIAL_INPUT, MAX_FIBONACCI_COUNT, MAX_POWER_EXPONENT (0 disables a limit)
//   - DATA_DIR
//   - CONFIG_FILE
//
// Example Usage:
//
//	cfg, err := config.Load(*configPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
