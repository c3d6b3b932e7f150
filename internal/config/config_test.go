package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("sqlite", "words.db"), cfg.Database.Path())
	assert.Equal(t, filepath.Join("resources", "data.txt"), cfg.Words.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fourword.yaml")
	content := `
database:
  dir: data
  file: game.db
  open_timeout: 2s
words:
  path: lists/four.txt
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "game.db"), cfg.Database.Path())
	assert.Equal(t, 2*time.Second, cfg.Database.OpenTimeout)
	assert.Equal(t, "lists/four.txt", cfg.Words.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fourword.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	t.Setenv("FOURWORD_LOG_LEVEL", "warn")
	t.Setenv("FOURWORD_DB_FILE", "env.db")
	t.Setenv("FOURWORD_DB_OPEN_TIMEOUT", "750ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, filepath.Join("sqlite", "env.db"), cfg.Database.Path())
	assert.Equal(t, 750*time.Millisecond, cfg.Database.OpenTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("FOURWORD_DB_OPEN_TIMEOUT", "soon")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: `invalid log level "verbose"`,
		},
		{
			name:   "level in another case",
			mutate: func(c *Config) { c.Log.Level = "WARNING" },
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: `invalid log format "xml"`,
		},
		{
			name:    "missing database file",
			mutate:  func(c *Config) { c.Database.File = "" },
			wantErr: "database.file is required",
		},
		{
			name:    "missing words path",
			mutate:  func(c *Config) { c.Words.Path = "" },
			wantErr: "words.path is required",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Database.OpenTimeout = -time.Second },
			wantErr: "open_timeout must not be negative",
		},
		{
			name:    "missing log output",
			mutate:  func(c *Config) { c.Log.Output = "" },
			wantErr: "log.output is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := LogConfig{Level: tt.in}.SlogLevel()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)

		cfg := Default()
		cfg.Log.Level = tt.in
		assert.NoError(t, cfg.Validate(), "Validate must accept every level SlogLevel accepts: %q", tt.in)
	}

	_, err := LogConfig{Level: "loud"}.SlogLevel()
	assert.EqualError(t, err, `invalid log level "loud": must be one of [debug info warn error]`)
}
