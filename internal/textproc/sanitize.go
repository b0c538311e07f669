package textproc

import (
	"strings"
	"unicode"

	"textkit/internal/logging"
)

// SanitizeOptions selects which character classes Sanitize keeps in addition
// to letters, which are always kept.
type SanitizeOptions struct {
	AllowNumbers bool
	AllowSpaces  bool
	// AllowedSpecial lists individual runes kept regardless of class.
	// Empty means no special characters are allowed.
	AllowedSpecial string
}

// DefaultSanitizeOptions keeps digits and whitespace and no special characters.
func DefaultSanitizeOptions() SanitizeOptions {
	return SanitizeOptions{AllowNumbers: true, AllowSpaces: true}
}

// keeps reports whether r survives sanitization under opts.
func (opts SanitizeOptions) keeps(r rune) bool {
	switch {
	case unicode.IsLetter(r):
		return true
	case opts.AllowNumbers && unicode.IsDigit(r):
		return true
	case opts.AllowSpaces && isSpace(r):
		return true
	case opts.AllowedSpecial != "" && strings.ContainsRune(opts.AllowedSpecial, r):
		return true
	default:
		return false
	}
}

// isSpace extends unicode.IsSpace with the ASCII file, group, record and
// unit separators (U+001C..U+001F), which count as whitespace here.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// Sanitize returns the runes of text that pass the character-class filter
// described by opts, in their original order.
func (p *Processor) Sanitize(text string, opts SanitizeOptions) string {
	var b strings.Builder
	b.Grow(len(text))
	dropped := 0
	for _, r := range text {
		if opts.keeps(r) {
			b.WriteRune(r)
			continue
		}
		dropped++
	}
	p.logger.Debug("sanitized text",
		logging.Int("dropped", dropped),
		logging.Bool("allow_numbers", opts.AllowNumbers),
		logging.Bool("allow_spaces", opts.AllowSpaces),
	)
	return b.String()
}

// SanitizeValue is Sanitize for loosely typed input.
func (p *Processor) SanitizeValue(v any, opts SanitizeOptions) (string, error) {
	text, err := asText(v)
	if err != nil {
		return "", err
	}
	return p.Sanitize(text, opts), nil
}
