package config

import (
	"errors"
	"fmt"

	"textkit/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLength(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLength() error {
	if c.Length.Min < 0 {
		return errors.New("length.min must be >= 0")
	}
	if c.Length.Max < c.Length.Min {
		return fmt.Errorf("length.max (%d) must be >= length.min (%d)", c.Length.Max, c.Length.Min)
	}
	return nil
}

func (c *Config) validateInput() error {
	if _, err := textutil.ParseNormalization(c.Input.Normalization); err != nil {
		return fmt.Errorf("input.normalization: %w", err)
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
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// Normalization returns the parsed input normalization form.
func (c *Config) Normalization() textutil.Normalization {
	form, err := textutil.ParseNormalization(c.Input.Normalization)
	if err != nil {
		return textutil.NormalizeNone
	}
	return form
}
