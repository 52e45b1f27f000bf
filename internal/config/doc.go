// Package config loads, normalizes, and validates the TOML
// configuration file. Defaults live in defaults.go and the embedded
// sample_config.toml documents every key.
package config
