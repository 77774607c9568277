package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Logging   LogConfig       `yaml:"logging" toml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors" toml:"cors"`
	Limits    LimitsConfig    `yaml:"limits" toml:"limits"`
	Data      DataConfig      `yaml:"data" toml:"data"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string `yaml:"port" toml:"port" envconfig:"PORT"`
	Host            string `yaml:"host" toml:"host" envconfig:"HOST"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"` // seconds
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// Shutdown returns the graceful shutdown timeout.
func (s ServerConfig) Shutdown() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `yaml:"level" toml:"level" envconfig:"LOG_LEVEL"`
	Development bool   `yaml:"development" toml:"development" envconfig:"LOG_DEV"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `yaml:"requests_per_second" toml:"requests_per_second" envconfig:"RATE_LIMIT_RPS"`
	Burst             int  `yaml:"burst" toml:"burst" envconfig:"RATE_LIMIT_BURST"`
	Enabled           bool `yaml:"enabled" toml:"enabled" envconfig:"RATE_LIMIT_ENABLED"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	Origins []string `yaml:"origins" toml:"origins" envconfig:"CORS_ORIGINS"`
}

// LimitsConfig bounds the inputs the API accepts for operations whose
// cost grows with the input. It converts directly to operations.Limits.
type LimitsConfig struct {
	MaxFactorialInput int64 `yaml:"max_factorial_input" toml:"max_factorial_input" envconfig:"MAX_FACTORIAL_INPUT"`
	MaxFibonacciCount int64 `yaml:"max_fibonacci_count" toml:"max_fibonacci_count" envconfig:"MAX_FIBONACCI_COUNT"`
	MaxPowerExponent  int64 `yaml:"max_power_exponent" toml:"max_power_exponent" envconfig:"MAX_POWER_EXPONENT"`
}

// DataConfig holds the directory the data tools read and write.
type DataConfig struct {
	Dir string `yaml:"dir" toml:"dir" envconfig:"DATA_DIR"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			Host:            "0.0.0.0",
			ShutdownTimeout: 10,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			Origins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
		},
		Limits: LimitsConfig{
			MaxFactorialInput: 10000,
			MaxFibonacciCount: 10000,
			MaxPowerExponent:  100000,
		},
		Data: DataConfig{
			Dir: "data",
		},
	}
}

// Load builds configuration from defaults, then the optional file named
// by path (or CONFIG_FILE when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load("")
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadFile overlays a YAML or TOML file onto cfg. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config file type: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive when enabled, got %d", c.RateLimit.RequestsPerSecond)
	}
	if c.Limits.MaxFactorialInput < 0 || c.Limits.MaxFibonacciCount < 0 || c.Limits.MaxPowerExponent < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}
