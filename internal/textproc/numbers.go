package textproc

import (
	"errors"
	"math"
	"regexp"
	"strconv"

	"textkit/internal/logging"
	"textkit/internal/textutil"
)

// numberPattern matches an optional minus sign, optional integer digits, an
// optional decimal point and at least one trailing digit. Digits are any
// Unicode decimal digit.
var numberPattern = regexp.MustCompile(`-?\p{Nd}*\.?\p{Nd}+`)

// ExtractNumbers returns every number embedded in text, in order of
// appearance. Matches are non-overlapping and scanned left to right.
func (p *Processor) ExtractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	numbers := make([]float64, 0, len(matches))
	for _, match := range matches {
		numbers = append(numbers, parseNumber(match))
	}
	p.logger.Debug("extracted numbers", logging.Int("count", len(numbers)))
	return numbers
}

// ExtractNumbersValue is ExtractNumbers for loosely typed input.
func (p *Processor) ExtractNumbersValue(v any) ([]float64, error) {
	text, err := asText(v)
	if err != nil {
		return nil, err
	}
	return p.ExtractNumbers(text), nil
}

// parseNumber converts a token produced by numberPattern. Out of range
// tokens saturate to ±Inf or round to zero instead of failing.
func parseNumber(token string) float64 {
	value, err := strconv.ParseFloat(textutil.ASCIIDigits(token), 64)
	if err == nil {
		return value
	}
	if errors.Is(err, strconv.ErrRange) {
		return value
	}
	// numberPattern only admits parseable tokens.
	return math.NaN()
}
