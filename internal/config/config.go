// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Export DPI bounds. Values outside are clamped, not rejected.
const (
	MinExportDPI     = 72
	MaxExportDPI     = 600
	DefaultExportDPI = 300
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// DataDir is where saved templates live, one JSON file each.
	DataDir string

	// Language is the initial interface language ("el" or "en").
	Language string

	// ExportDPI is the raster resolution for print exports.
	ExportDPI int
}

// Load reads configuration from environment variables, applying defaults
// where values are unset. It never fails on out-of-range numbers; those
// are clamped with a warning.
func Load() (*Config, error) {
	dataDir := os.Getenv("ADPRESS_DATA_DIR")
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve default data dir: %w", err)
		}
		dataDir = filepath.Join(base, "adpress")
	}

	cfg := &Config{
		DataDir:   dataDir,
		Language:  envOrDefault("ADPRESS_LANG", "en"),
		ExportDPI: DefaultExportDPI,
	}

	if raw := os.Getenv("ADPRESS_EXPORT_DPI"); raw != "" {
		dpi, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("ADPRESS_EXPORT_DPI: %w", err)
		}
		cfg.ExportDPI = clampDPI(dpi)
		if cfg.ExportDPI != dpi {
			slog.Warn("export DPI clamped", "requested", dpi, "using", cfg.ExportDPI)
		}
	}

	return cfg, nil
}

// TemplateDir returns the directory holding saved template files.
func (c *Config) TemplateDir() string {
	return filepath.Join(c.DataDir, "templates")
}

func clampDPI(dpi int) int {
	if dpi < MinExportDPI {
		return MinExportDPI
	}
	if dpi > MaxExportDPI {
		return MaxExportDPI
	}
	return dpi
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
