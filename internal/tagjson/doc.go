// Package tagjson renders a value tree as the tagged JSON wire format
// consumed by TOML conformance harnesses: every scalar becomes a
// {"type":...,"value":...} object so that JSON can carry type
// distinctions it has no native syntax for.
//
// The output is byte-exact by contract, so serialization is hand-rolled
// here rather than delegated to encoding/json: the escaping policy
// (only \n gets a short escape, other control bytes go numeric, non-BMP
// code points become surrogate pairs) is not a policy any general
// encoder offers.
package tagjson
