package textutil

import (
	"strings"
	"unicode"
)

// DigitValue returns the decimal value of r when r is a Unicode decimal digit.
// Decimal digits are allocated in contiguous runs of ten starting at zero, so
// the value is the offset within the owning range of the Nd table.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < 0x80 || !unicode.IsDigit(r) {
		return 0, false
	}
	if r <= 0xFFFF {
		for _, rng := range unicode.Nd.R16 {
			lo, hi := rune(rng.Lo), rune(rng.Hi)
			if r < lo || r > hi {
				continue
			}
			return int((r-lo)/rune(rng.Stride)) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r < lo || r > hi {
			continue
		}
		return int((r-lo)/rune(rng.Stride)) % 10, true
	}
	return 0, false
}

// ASCIIDigits rewrites every Unicode decimal digit in s as its ASCII
// equivalent and leaves all other runes unchanged.
func ASCIIDigits(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := DigitValue(r); ok {
			b.WriteByte(byte('0' + d))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
