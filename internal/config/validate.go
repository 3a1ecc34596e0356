package config

import (
	"fmt"
	"strings"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// FieldError is one rejected configuration value
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError collects every rejected value
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the whole configuration and reports all problems at once
func (c *Config) Validate() error {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	s := c.Server
	if s.Port < 1 || s.Port > 65535 {
		add("server.port", "must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeoutSeconds < 0 {
		add("server.read_timeout_seconds", "must not be negative")
	}
	if s.WriteTimeoutSeconds < 0 {
		add("server.write_timeout_seconds", "must not be negative")
	}
	if s.ShutdownTimeoutSeconds < 0 {
		add("server.shutdown_timeout_seconds", "must not be negative")
	}
	if s.MaxBodyBytes <= 0 {
		add("server.max_body_bytes", "must be positive")
	}
	if s.RateLimitRPS < 0 {
		add("server.rate_limit_rps", "must not be negative")
	}
	if s.RateLimitRPS > 0 && s.RateLimitBurst < 1 {
		add("server.rate_limit_burst", "must be at least 1 when rate limiting is enabled")
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level", "%v", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		add("logging.format", "must be json or console, got %q", c.Logging.Format)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		add("metrics.path", "must start with /, got %q", c.Metrics.Path)
	}

	if c.Engine.DefaultVersion != "" {
		if _, err := sora.ParseVersion(c.Engine.DefaultVersion); err != nil {
			add("engine.default_version", "%v", err)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
