package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"subtidy/internal/profile"
)

//go:embed sample_config.toml
var sampleConfig string

// Defaults selects the language and audience used when flags are absent.
type Defaults struct {
	Language string `toml:"language"`
	Kids     bool   `toml:"kids"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Limits overrides built-in style limits for one language. Zero values leave
// the built-in limit untouched.
type Limits struct {
	MaxCharsPerLine int     `toml:"max_chars_per_line"`
	MaxLines        int     `toml:"max_lines"`
	MaxCPS          float64 `toml:"max_cps"`
	MaxCPSKids      float64 `toml:"max_cps_kids"`
	MinDurationMs   int     `toml:"min_duration_ms"`
	MaxDurationMs   int     `toml:"max_duration_ms"`
	MinGapMs        int     `toml:"min_gap_ms"`
}

// Config encapsulates all configuration values for subtidy.
type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Logging  Logging           `toml:"logging"`
	Limits   map[string]Limits `toml:"limits"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subtidy/config.toml")
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("subtidy.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ProfileFor resolves the style profile for a language and applies any
// configured overrides.
func (c *Config) ProfileFor(code string) (profile.Profile, error) {
	p, err := profile.Lookup(code)
	if err != nil {
		return profile.Profile{}, err
	}
	limits, ok := c.Limits[p.Code]
	if !ok {
		return p, nil
	}
	if limits.MaxCharsPerLine > 0 {
		p.MaxCharsPerLine = limits.MaxCharsPerLine
	}
	if limits.MaxLines > 0 {
		p.MaxLines = limits.MaxLines
	}
	if limits.MaxCPS > 0 {
		p.CPSAdult = limits.MaxCPS
	}
	if limits.MaxCPSKids > 0 {
		p.CPSKids = limits.MaxCPSKids
	}
	if limits.MinDurationMs > 0 {
		p.MinDuration = time.Duration(limits.MinDurationMs) * time.Millisecond
	}
	if limits.MaxDurationMs > 0 {
		p.MaxDuration = time.Duration(limits.MaxDurationMs) * time.Millisecond
	}
	if limits.MinGapMs > 0 {
		p.MinGap = time.Duration(limits.MinGapMs) * time.Millisecond
	}
	return p, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
