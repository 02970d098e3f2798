package config

import (
	"strings"

	"subtidy/internal/language"
)

func (c *Config) normalize() {
	c.Defaults.Language = strings.ToLower(strings.TrimSpace(c.Defaults.Language))
	c.normalizeLogging()
	c.normalizeLimits()
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) normalizeLimits() {
	if len(c.Limits) == 0 {
		return
	}
	normalized := make(map[string]Limits, len(c.Limits))
	for code, limits := range c.Limits {
		key := strings.ToLower(strings.TrimSpace(code))
		if mapped := language.ToISO2(key); mapped != "" {
			key = mapped
		}
		normalized[key] = limits
	}
	c.Limits = normalized
}
