// Package tomlparse is the boundary to the external TOML parsers being
// put under test. Each backend wraps one real parser library and
// converts its native output into the value union; TOML grammar itself
// is never parsed here.
//
// Parse failure is a value, not a panic: backends return the wrapped
// library's own error and the caller decides how to surface it.
package tomlparse
