package config

import (
	"fmt"
	"regexp"
)

var thumbnailSizePattern = regexp.MustCompile(`^\d+x\d+$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMedia(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMedia() error {
	if c.Media.FPS < 1 {
		return fmt.Errorf("media.fps must be a positive integer, got %d", c.Media.FPS)
	}
	if !thumbnailSizePattern.MatchString(c.Media.ThumbnailSize) {
		return fmt.Errorf("media.thumbnail_size must look like WIDTHxHEIGHT, got %q", c.Media.ThumbnailSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
