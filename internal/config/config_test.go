// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"path/filepath"
	"testing"
)

// TestLoad_Defaults verifies that Load returns sensible defaults when no
// environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADPRESS_DATA_DIR", "ADPRESS_LANG", "ADPRESS_EXPORT_DPI"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.DataDir == "" {
		t.Error("DataDir is empty, want a user config subdirectory")
	}
	if filepath.Base(cfg.DataDir) != "adpress" {
		t.Errorf("DataDir = %q, want an adpress directory", cfg.DataDir)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want %q", cfg.Language, "en")
	}
	if cfg.ExportDPI != DefaultExportDPI {
		t.Errorf("ExportDPI = %d, want %d", cfg.ExportDPI, DefaultExportDPI)
	}
}

// TestLoad_EnvOverrides verifies that every environment variable
// overrides its default.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADPRESS_DATA_DIR", "/tmp/adpress-test")
	t.Setenv("ADPRESS_LANG", "el")
	t.Setenv("ADPRESS_EXPORT_DPI", "150")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.DataDir != "/tmp/adpress-test" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/tmp/adpress-test")
	}
	if cfg.Language != "el" {
		t.Errorf("Language = %q, want %q", cfg.Language, "el")
	}
	if cfg.ExportDPI != 150 {
		t.Errorf("ExportDPI = %d, want 150", cfg.ExportDPI)
	}
}

// TestLoad_DPIClamping verifies out-of-range resolutions are clamped
// rather than rejected.
func TestLoad_DPIClamping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "below minimum", raw: "10", want: MinExportDPI},
		{name: "at minimum", raw: "72", want: 72},
		{name: "typical print", raw: "300", want: 300},
		{name: "at maximum", raw: "600", want: 600},
		{name: "above maximum", raw: "1200", want: MaxExportDPI},
		{name: "negative", raw: "-300", want: MinExportDPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADPRESS_EXPORT_DPI", tt.raw)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if cfg.ExportDPI != tt.want {
				t.Errorf("ExportDPI = %d, want %d", cfg.ExportDPI, tt.want)
			}
		})
	}
}

// TestLoad_DPINotANumber verifies a non-numeric resolution is rejected
// with a named error.
func TestLoad_DPINotANumber(t *testing.T) {
	t.Setenv("ADPRESS_EXPORT_DPI", "high")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted a non-numeric ADPRESS_EXPORT_DPI")
	}
}

// TestTemplateDir verifies saved templates live under the data dir.
func TestTemplateDir(t *testing.T) {
	cfg := Config{DataDir: "/data/adpress"}
	want := filepath.Join("/data/adpress", "templates")
	if got := cfg.TemplateDir(); got != want {
		t.Errorf("TemplateDir() = %q, want %q", got, want)
	}
}

// TestEnvOrDefault confirms a set variable wins and an empty one falls
// through to the default.
func TestEnvOrDefault(t *testing.T) {
	t.Run("set value wins", func(t *testing.T) {
		t.Setenv("ADPRESS_LANG", "el")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Language != "el" {
			t.Errorf("Language = %q, want %q", cfg.Language, "el")
		}
	})

	t.Run("empty value uses default", func(t *testing.T) {
		t.Setenv("ADPRESS_LANG", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Language != "en" {
			t.Errorf("Language = %q, want default %q", cfg.Language, "en")
		}
	})
}
