// Package logging assembles structured slog loggers used across textkit.
//
// It owns the console and JSON handlers, parses level names, and exposes
// context helpers so batch processing can tag every line with the request it
// belongs to. NewNop provides a silent logger for tests and for library code
// constructed without one.
package logging
