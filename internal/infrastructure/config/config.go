package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/speclint/pkg/domain/check/rules"
	"github.com/felixgeelhaar/speclint/pkg/infrastructure/schema"
	"github.com/felixgeelhaar/speclint/pkg/storage"
)

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = ".speclint.yaml"
	// EnvFile overrides the config file location.
	EnvFile = "SPECLINT_CONFIG"

	FormatText = "text"
	FormatJSON = "json"

	DefaultThreshold = 75.0
	DefaultLogLevel  = "warn"
)

// Config holds linter settings.
type Config struct {
	Root      string   `yaml:"root"`
	Schema    string   `yaml:"schema"`
	PacksDir  string   `yaml:"packs_dir"`
	Pattern   string   `yaml:"pattern"`
	Threshold float64  `yaml:"threshold"`
	Checks    []string `yaml:"checks"`
	LogLevel  string   `yaml:"log_level"`
	Format    string   `yaml:"format"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Root:      ".",
		Schema:    schema.DefaultPath,
		PacksDir:  rules.DefaultPacksDir,
		Pattern:   storage.DefaultPattern,
		Threshold: DefaultThreshold,
		LogLevel:  DefaultLogLevel,
		Format:    FormatText,
	}
}

// Load reads the config file at path over the defaults.
// An empty path falls back to $SPECLINT_CONFIG, then DefaultFile. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvFile); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultFile
		}
	}

	cfg := Default()

	// #nosec G304 -- config path is user-provided
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	checks := make([]any, len(rules.Names))
	for i, n := range rules.Names {
		checks[i] = n
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Schema, validation.Required),
		validation.Field(&c.PacksDir, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
		validation.Field(&c.Threshold, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&c.Checks, validation.Each(validation.In(checks...))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatJSON)),
	)
}

// SchemaPath resolves the schema location against the root.
func (c *Config) SchemaPath() string {
	if filepath.IsAbs(c.Schema) {
		return c.Schema
	}
	return filepath.Join(c.Root, filepath.FromSlash(c.Schema))
}

// PacksPath resolves the rule pack directory against the root.
func (c *Config) PacksPath() string {
	if filepath.IsAbs(c.PacksDir) {
		return c.PacksDir
	}
	return filepath.Join(c.Root, filepath.FromSlash(c.PacksDir))
}

// Level maps LogLevel onto a slog level. Unknown values fall back to warn.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
