// Package config holds the startup configuration for fourword.
//
// Values are layered: defaults, then an optional YAML file, then FOURWORD_*
// environment variables. Command-line flags are applied by the caller last.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Words    WordsConfig    `yaml:"words"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	// Dir is the fixed subdirectory holding the database file.
	Dir string `yaml:"dir" env:"FOURWORD_DB_DIR"`
	// File is the database file name inside Dir.
	File string `yaml:"file" env:"FOURWORD_DB_FILE"`
	// OpenTimeout bounds the initial connection check. Zero disables it.
	OpenTimeout time.Duration `yaml:"open_timeout" env:"FOURWORD_DB_OPEN_TIMEOUT"`
}

// Path returns the database file path.
func (d DatabaseConfig) Path() string {
	return filepath.Join(d.Dir, d.File)
}

// WordsConfig locates the word source.
type WordsConfig struct {
	Path string `yaml:"path" env:"FOURWORD_WORDS_PATH"`
}

// LogConfig controls the logger built by the logging package.
type LogConfig struct {
	Level  string `yaml:"level" env:"FOURWORD_LOG_LEVEL"`   // debug|info|warn|error
	Format string `yaml:"format" env:"FOURWORD_LOG_FORMAT"` // text|json
	Output string `yaml:"output" env:"FOURWORD_LOG_OUTPUT"` // stderr|stdout|<file path>
}

// SlogLevel maps Level to a slog.Level. Names are case-insensitive, "warning"
// is accepted for "warn" and an empty level means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of %v", l.Level, ValidLevels)
}

// ServerConfig controls the HTTP lookup server.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"FOURWORD_SERVER_ADDR"`
}

// Valid option values. Level names also accept any case and "warning".
var (
	ValidLevels  = []string{"debug", "info", "warn", "error"}
	ValidFormats = []string{"text", "json"}
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Dir:         "sqlite",
			File:        "words.db",
			OpenTimeout: 5 * time.Second,
		},
		Words: WordsConfig{
			Path: filepath.Join("resources", "data.txt"),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. The result is not validated; call
// Validate after applying flags.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks required fields and enumerated values.
func (c Config) Validate() error {
	var errs []error
	if c.Database.File == "" {
		errs = append(errs, errors.New("database.file is required"))
	}
	if c.Database.OpenTimeout < 0 {
		errs = append(errs, fmt.Errorf("database.open_timeout must not be negative, got %s", c.Database.OpenTimeout))
	}
	if c.Words.Path == "" {
		errs = append(errs, errors.New("words.path is required"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(ValidFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be one of %v", c.Log.Format, ValidFormats))
	}
	if c.Log.Output == "" {
		errs = append(errs, errors.New("log.output is required"))
	}
	return errors.Join(errs...)
}
