// Package config loads, normalizes, and validates textkit configuration data.
//
// It supplies repository defaults for every per-call parameter of the text
// operations (length bounds, sanitize flags), the input normalization form,
// and logging. Files are TOML; TEXTKIT_LOG_LEVEL and TEXTKIT_LOG_FORMAT
// override the logging section.
//
// Always obtain settings through this package so the command-line front end
// and the batch driver apply the same defaults.
package config
