// Package textutil provides rune-level helpers shared by the text operations
// and the command-line front end.
//
// The primary use cases are:
//   - Resolving the decimal value of any Unicode decimal digit (category Nd)
//   - Applying an optional Unicode normalization form before processing
//   - Title-casing short labels for table headers
//
// Normalization and casing are backed by golang.org/x/text so that results are
// consistent across scripts rather than limited to ASCII.
package textutil
