package textproc

import "unicode/utf8"

const (
	// DefaultMinLength is the inclusive lower bound used by ValidateLengthDefault.
	DefaultMinLength = 1
	// DefaultMaxLength is the inclusive upper bound used by ValidateLengthDefault.
	DefaultMaxLength = 1000
)

// ValidateLength reports whether text holds between minLength and maxLength
// runes, both inclusive.
func (p *Processor) ValidateLength(text string, minLength, maxLength int) bool {
	n := utf8.RuneCountInString(text)
	return minLength <= n && n <= maxLength
}

// ValidateLengthDefault applies ValidateLength with the default bounds.
func (p *Processor) ValidateLengthDefault(text string) bool {
	return p.ValidateLength(text, DefaultMinLength, DefaultMaxLength)
}

// ValidateLengthValue is ValidateLength for loosely typed input. Values that
// are not text yield false rather than an error.
func (p *Processor) ValidateLengthValue(v any, minLength, maxLength int) bool {
	text, err := asText(v)
	if err != nil {
		return false
	}
	return p.ValidateLength(text, minLength, maxLength)
}
