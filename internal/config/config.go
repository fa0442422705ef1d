// Package config loads gcrender settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. GCANVAS_OUTPUT.
const Prefix = "gcanvas"

// Output formats understood by the renderer.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatJPEG = "jpeg"
)

// Config holds the renderer settings. Field names map to variables with
// Prefix, e.g. LogLevel is read from GCANVAS_LOG_LEVEL.
type Config struct {
	Output   string `default:"out.png"`
	Format   string
	LogLevel string `split_words:"true" default:"warn"`
	Width    int
	Height   int
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveFormat returns the output format. An empty Format is inferred from
// the output file extension.
func (c *Config) ResolveFormat() (string, error) {
	f := strings.ToLower(c.Format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
	}
	switch f {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("config: unsupported output format %q", f)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}

// Validate reports settings that cannot produce an image.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("config: empty output path")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative size override %dx%d", c.Width, c.Height)
	}
	if _, err := c.ResolveFormat(); err != nil {
		return err
	}
	_, err := c.SlogLevel()
	return err
}
