package batch

import (
	"errors"
	"strings"
)

// ErrUnknownOperation is reported for requests naming an unsupported op.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names accepted in Request.Op.
const (
	OpValidate = "validate"
	OpCount    = "count"
	OpNumbers  = "numbers"
	OpSanitize = "sanitize"
)

var opAliases = map[string]string{
	OpValidate:                OpValidate,
	"validate_string_length":  OpValidate,
	OpCount:                   OpCount,
	"count_unique_characters": OpCount,
	OpNumbers:                 OpNumbers,
	"extract_numbers":         OpNumbers,
	OpSanitize:                OpSanitize,
	"sanitize_text":           OpSanitize,
}

// canonicalOp resolves an operation name or its long alias.
func canonicalOp(name string) (string, bool) {
	op, ok := opAliases[strings.ToLower(strings.TrimSpace(name))]
	return op, ok
}

// Request is one line of batch input.
type Request struct {
	ID   string `json:"id"`
	Op   string `json:"op"`
	Text any    `json:"text"`

	MinLength           *int    `json:"min_length,omitempty"`
	MaxLength           *int    `json:"max_length,omitempty"`
	AllowNumbers        *bool   `json:"allow_numbers,omitempty"`
	AllowSpaces         *bool   `json:"allow_spaces,omitempty"`
	AllowedSpecialChars *string `json:"allowed_special_chars,omitempty"`
}

// Result is one line of batch output.
type Result struct {
	ID     string `json:"id"`
	Line   int    `json:"line,omitempty"`
	Op     string `json:"op,omitempty"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Summary totals a batch run.
type Summary struct {
	Lines     int `json:"lines"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}
