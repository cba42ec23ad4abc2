// Package cli implements the adapter process contract a conformance
// harness drives: the complete TOML document arrives on stdin, one line
// of tagged JSON (or one parse diagnostic) leaves on stdout, and the
// exit status tells the harness whether the document parsed.
//
// Each invocation is stateless and one-shot. No flags or environment
// variables are consulted, which is what lets the harness treat every
// adapter binary identically regardless of the parser it wraps.
package cli
