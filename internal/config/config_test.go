package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "activities"
redis_host = "localhost"
redis_port = "6379"
prom_metrics_host = "localhost"
prom_metrics_port = "2112"

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/activity-backend"
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "activities"
redis_host = "localhost"
redis_port = "6379"
prom_metrics_host = "localhost"
prom_metrics_port = "2112"
wall_clock_offset_hours = 7
login_rate_limit_allowed_per_min = 10
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	// defaults kick in when not set
	assert.Equal(t, 7, cfg.WallClockOffsetHours)
	assert.Equal(t, 15, cfg.LoginRateLimitAllowedPerMin)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("prod", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 7, cfg.WallClockOffsetHours)
	assert.Equal(t, 10, cfg.LoginRateLimitAllowedPerMin)
}

func TestLoad_MissingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[production]
host = ""
port = 9000
`), 0o600))

	require.NotPanics(t, func() {
		cfg, err := Load("development", path)
		assert.ErrorContains(t, err, "no config for env")
		assert.Nil(t, cfg)
	})
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("dev", "/nonexistent/config.toml")
	require.Error(t, err)
}
