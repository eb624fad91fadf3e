// Package config loads the formctl YAML configuration, applies defaults and
// validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formctl/pkg/storage"
)

// Config is the root configuration document.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Submit    SubmitConfig    `yaml:"submit"`
	Log       LogConfig       `yaml:"log"`
	Form      FormConfig      `yaml:"form"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=memory file sqlite"`
	Path    string `yaml:"path" validate:"required_unless=Backend memory"`
	// Key overrides the form definition's storage key.
	Key string `yaml:"key"`
}

// SubmitConfig tunes the submission flow.
type SubmitConfig struct {
	Delay time.Duration `yaml:"delay" validate:"gte=0"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
	// File enables a rotating JSON log file in addition to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

// FormConfig points at an alternative form definition.
type FormConfig struct {
	Definition string `yaml:"definition"`
}

// AnalyticsConfig controls event export.
type AnalyticsConfig struct {
	// Export appends every event as a JSON line to this file.
	Export string `yaml:"export"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: storage.BackendFile,
			Path:    ".formctl",
		},
		Submit: SubmitConfig{Delay: time.Second},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 7,
		},
	}
}

// Option mutates a loaded configuration before validation.
type Option func(*Config)

// WithVerbose forces debug logging.
func WithVerbose(verbose bool) Option {
	return func(c *Config) {
		if verbose {
			c.Log.Level = "debug"
		}
	}
}

// WithStorage overrides the backend and path when non-empty.
func WithStorage(backend, path string) Option {
	return func(c *Config) {
		if backend != "" {
			c.Storage.Backend = backend
		}
		if path != "" {
			c.Storage.Path = path
		}
	}
}

// Load reads path (optional) over the defaults.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("%w (file %s)", err, path)
		}
	}
	return finish(cfg, opts...)
}

// Parse decodes r over the defaults.
func Parse(r io.Reader, opts ...Option) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg, opts...)
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode: %w", err)
	}
	return nil
}

func finish(cfg Config, opts ...Option) (Config, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
