// Package main hosts the textkit CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes each text operation as a subcommand
// that reads its text from an argument or stdin, plus a batch mode that
// streams JSON-lines requests and configuration scaffolding. It centralizes
// configuration resolution and logger setup so subcommands only parse flags
// and render results.
//
// Keep this package lean: add behavior to the internal packages first, then
// surface it through commands or flags here.
package main
