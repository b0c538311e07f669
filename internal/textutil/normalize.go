package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalization names a Unicode normalization form applied to input text.
type Normalization string

const (
	NormalizeNone Normalization = "none"
	NormalizeNFC  Normalization = "nfc"
	NormalizeNFD  Normalization = "nfd"
	NormalizeNFKC Normalization = "nfkc"
	NormalizeNFKD Normalization = "nfkd"
)

// ParseNormalization maps a user supplied form name to a Normalization.
// An empty value means no normalization.
func ParseNormalization(value string) (Normalization, error) {
	switch Normalization(strings.ToLower(strings.TrimSpace(value))) {
	case "", NormalizeNone:
		return NormalizeNone, nil
	case NormalizeNFC:
		return NormalizeNFC, nil
	case NormalizeNFD:
		return NormalizeNFD, nil
	case NormalizeNFKC:
		return NormalizeNFKC, nil
	case NormalizeNFKD:
		return NormalizeNFKD, nil
	default:
		return "", fmt.Errorf("normalization: unsupported form %q", value)
	}
}

// Apply returns s in the receiver's normalization form.
func (n Normalization) Apply(s string) string {
	switch n {
	case NormalizeNFC:
		return norm.NFC.String(s)
	case NormalizeNFD:
		return norm.NFD.String(s)
	case NormalizeNFKC:
		return norm.NFKC.String(s)
	case NormalizeNFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}

// Title upper-cases the first letter of each word in s.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}
