// Package config loads, normalizes, and validates subtidy configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and merges per-language limit overrides onto
// the built-in style profiles. Always obtain settings through this package so
// downstream code receives canonical log formats, normalized language codes,
// and clear validation errors.
package config
