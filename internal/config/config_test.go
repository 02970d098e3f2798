package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	path := writeConfig(t, `
[defaults]
language = "ENG"
kids = true

[logging]
level = "debug"
format = "json"
`)
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected resolved existing path, got %q %v", resolved, exists)
	}
	if cfg.Defaults.Language != "eng" {
		t.Fatalf("expected lowercased language, got %q", cfg.Defaults.Language)
	}
	if !cfg.Defaults.Kids {
		t.Fatal("expected kids default true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadRejectsBadLoggingFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "yaml"
`)
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad format")
	}
}

func TestLoadRejectsUnknownDefaultLanguage(t *testing.T) {
	path := writeConfig(t, `
[defaults]
language = "tlh"
`)
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown language")
	}
}

func TestLimitOverridesApply(t *testing.T) {
	path := writeConfig(t, `
[limits.eng]
max_chars_per_line = 37
max_cps = 20.0
min_gap_ms = 100
`)
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p, err := cfg.ProfileFor("en")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.MaxCharsPerLine != 37 {
		t.Fatalf("expected overridden chars, got %d", p.MaxCharsPerLine)
	}
	if p.CPSAdult != 20 {
		t.Fatalf("expected overridden CPS, got %v", p.CPSAdult)
	}
	if p.MinGap != 100*time.Millisecond {
		t.Fatalf("expected overridden gap, got %v", p.MinGap)
	}
	// Untouched limits keep built-in values.
	if p.CPSKids != 15 || p.MinDuration != 833*time.Millisecond {
		t.Fatalf("unexpected override spill: %+v", p)
	}
	// Other languages are unaffected.
	zh, err := cfg.ProfileFor("zh")
	if err != nil {
		t.Fatalf("profile zh: %v", err)
	}
	if zh.MaxCharsPerLine != 16 {
		t.Fatalf("zh profile changed: %d", zh.MaxCharsPerLine)
	}
}

func TestLimitOverridesRejectUnknownLanguage(t *testing.T) {
	path := writeConfig(t, `
[limits.qq]
max_cps = 10.0
`)
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown limits language")
	}
}

func TestLimitOverridesRejectInvertedDurations(t *testing.T) {
	path := writeConfig(t, `
[limits.en]
min_duration_ms = 8000
max_duration_ms = 7000
`)
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for inverted durations")
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := writeConfig(t, SampleConfig())
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
}
