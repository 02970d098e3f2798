package config

import (
	"fmt"

	"subtidy/internal/profile"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateLimits()
}

func (c *Config) validateDefaults() error {
	if c.Defaults.Language == "" {
		return nil
	}
	if _, err := profile.Lookup(c.Defaults.Language); err != nil {
		return fmt.Errorf("defaults.language: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLimits() error {
	for code, limits := range c.Limits {
		if _, err := profile.Lookup(code); err != nil {
			return fmt.Errorf("limits.%s: %w", code, err)
		}
		if limits.MaxCharsPerLine < 0 || limits.MaxLines < 0 ||
			limits.MaxCPS < 0 || limits.MaxCPSKids < 0 ||
			limits.MinDurationMs < 0 || limits.MaxDurationMs < 0 || limits.MinGapMs < 0 {
			return fmt.Errorf("limits.%s: values must not be negative", code)
		}
		if limits.MinDurationMs > 0 && limits.MaxDurationMs > 0 && limits.MinDurationMs > limits.MaxDurationMs {
			return fmt.Errorf("limits.%s: min_duration_ms exceeds max_duration_ms", code)
		}
	}
	return nil
}
