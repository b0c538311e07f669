package textproc

import (
	"unicode/utf8"

	"textkit/internal/logging"
)

// CountUnique returns how often each distinct rune occurs in text and records
// text as the processor's last processed value.
func (p *Processor) CountUnique(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}
	p.setLastProcessed(text)
	p.logger.Debug("counted characters",
		logging.Int("runes", utf8.RuneCountInString(text)),
		logging.Int("distinct", len(counts)),
	)
	return counts
}

// CountUniqueValue is CountUnique for loosely typed input. On failure the
// last processed value is left untouched.
func (p *Processor) CountUniqueValue(v any) (map[rune]int, error) {
	text, err := asText(v)
	if err != nil {
		return nil, err
	}
	return p.CountUnique(text), nil
}
