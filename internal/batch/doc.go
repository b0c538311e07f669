// Package batch drives the text operations from JSON-lines input.
//
// Each input line is one Request; each produces exactly one Result line, in
// input order. The text field is decoded without a type, so numbers, booleans,
// null, or a missing field reach the processor's loosely typed entry points:
// validation answers false, every other operation reports invalid input.
// Malformed lines produce an error result and processing continues.
//
// Option fields omitted from a request fall back to Defaults, which the
// command-line front end derives from configuration.
package batch
