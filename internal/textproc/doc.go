// Package textproc implements the textkit text operations: length
// validation, character-frequency counting, numeric-token extraction, and
// character-class sanitization.
//
// Every operation works at rune (Unicode codepoint) granularity. The typed
// methods on Processor accept strings directly and cannot fail. The *Value
// variants accept loosely typed values, as produced by decoding JSON, and
// report ErrInvalidInput when the value is not text. ValidateLengthValue is
// the exception: it degrades to false instead of failing.
//
// A Processor remembers the most recent text passed to CountUnique. Nothing
// else in the package keeps state, so a single Processor is safe to share.
package textproc
