// Package value defines the closed union of TOML values handed over by a
// parser backend and consumed by the tagged-JSON encoder.
//
// This package contains type definitions only. Every other internal
// package imports value; value imports nothing internal, which keeps it
// the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - The union is sealed: only the types in this package implement Value.
//   - Table is an ordered slice of members, never a Go map, so source
//     definition order survives through encoding.
//   - A tree is immutable once built and owned by a single invocation.
package value
