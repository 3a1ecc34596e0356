package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout())
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	path := writeFile(t, "sora.toml", `
[server]
port = 9090
cors_allowed_origins = ["https://ops.example"]

[logging]
level = "debug"
format = "console"

[engine]
default_version = "2.5"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://ops.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "2.5", cfg.Engine.DefaultVersion)
	// untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Server.ReadTimeoutSeconds)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeFile(t, "sora.toml", "[server]\nprot = 9090\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.prot")

	path = writeFile(t, "sora.yaml", "server:\n  prot: 9090\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field prot not found")
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "sora.yml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "sora.yaml", `
server:
  port: 7070
  rate_limit_rps: 0
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Zero(t, cfg.Server.RateLimitRPS)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "sora.toml", "[server]\nport = 6060\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv("SORA_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	cfg.Logging.Format = "xml"
	cfg.Metrics.Path = "metrics"
	cfg.Engine.DefaultVersion = "3.0"

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		fields[i] = fe.Field
	}
	assert.Equal(t, []string{"server.port", "logging.format", "metrics.path", "engine.default_version"}, fields)
}
