package config

const (
	defaultMinLength     = 1
	defaultMaxLength     = 1000
	defaultAllowNumbers  = true
	defaultAllowSpaces   = true
	defaultNormalization = "none"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Length: Length{
			Min: defaultMinLength,
			Max: defaultMaxLength,
		},
		Sanitize: Sanitize{
			AllowNumbers: defaultAllowNumbers,
			AllowSpaces:  defaultAllowSpaces,
		},
		Input: Input{
			Normalization: defaultNormalization,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
