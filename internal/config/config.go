// Package config loads the service configuration from TOML or YAML
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// EnvConfigPath names the file Load reads when no path is given
const EnvConfigPath = "SORA_CONFIG"

// Config is the root configuration
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Logging logger.Config `toml:"logging" yaml:"logging"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host                   string   `toml:"host" yaml:"host"`
	Port                   int      `toml:"port" yaml:"port"`
	CORSAllowedOrigins     []string `toml:"cors_allowed_origins" yaml:"cors_allowed_origins"`
	ReadTimeoutSeconds     int      `toml:"read_timeout_seconds" yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int      `toml:"write_timeout_seconds" yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int      `toml:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
	MaxBodyBytes           int64    `toml:"max_body_bytes" yaml:"max_body_bytes"`
	EnableH2C              bool     `toml:"enable_h2c" yaml:"enable_h2c"`
	RateLimitRPS           float64  `toml:"rate_limit_rps" yaml:"rate_limit_rps"` // 0 disables
	RateLimitBurst         int      `toml:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled" yaml:"enabled"`
	Path      string `toml:"path" yaml:"path"`
	Namespace string `toml:"namespace" yaml:"namespace"`
}

// EngineConfig holds settings for the calculation pipeline
type EngineConfig struct {
	// DefaultVersion is applied to payloads that omit "version". Empty means
	// the version is mandatory.
	DefaultVersion string `toml:"default_version" yaml:"default_version"`
	// IncludeDigest adds a canonical SHA-256 digest to assessment responses
	IncludeDigest bool `toml:"include_digest" yaml:"include_digest"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:                   "0.0.0.0",
			Port:                   8080,
			CORSAllowedOrigins:     []string{},
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 15,
			MaxBodyBytes:           64 << 10,
			RateLimitRPS:           50,
			RateLimitBurst:         100,
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      "/metrics",
			Namespace: "sora",
		},
		Engine: EngineConfig{
			IncludeDigest: true,
		},
	}
}

// Addr returns host:port for the listener
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ReadTimeout returns the read timeout as a duration
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown budget
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) String() string {
	return fmt.Sprintf("server=%s metrics=%t default_version=%q", c.Server.Addr(), c.Metrics.Enabled, c.Engine.DefaultVersion)
}
