package config

import "strings"

func (c *Config) normalize() {
	c.Input.Normalization = strings.ToLower(strings.TrimSpace(c.Input.Normalization))
	if c.Input.Normalization == "" {
		c.Input.Normalization = defaultNormalization
	}
	c.normalizeLogging()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
