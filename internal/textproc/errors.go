package textproc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is reported when an operation that requires text receives
// something else, including nil.
var ErrInvalidInput = errors.New("invalid input")

// asText extracts a string from a loosely typed value.
func asText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case *string:
		if t != nil {
			return *t, nil
		}
		return "", fmt.Errorf("%w: input must be a string, got nil *string", ErrInvalidInput)
	case nil:
		return "", fmt.Errorf("%w: input must be a string, got nil", ErrInvalidInput)
	default:
		return "", fmt.Errorf("%w: input must be a string, got %T", ErrInvalidInput, v)
	}
}
