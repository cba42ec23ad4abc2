package tagjson

import (
	"bytes"
	"fmt"

	"github.com/tomltag/tomltag/internal/value"
)

// Marshal renders a value tree as one line of tagged JSON, no trailing
// newline. Traversal is depth-first in definition order: array elements
// keep their sequence and table members keep their source key order.
//
// Recursion depth equals document nesting depth. The tree is finite and
// acyclic by construction upstream, so no cycle detection is done here;
// pathological nesting fails with a stack overflow rather than
// truncated output.
func Marshal(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v value.Value) error {
	switch x := v.(type) {
	case value.Array:
		buf.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil

	case value.Table:
		buf.WriteByte('{')
		for i, m := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(EscapeString(m.Key))
			buf.WriteByte(':')
			if err := encodeValue(buf, m.Value); err != nil {
				return fmt.Errorf("table[%q]: %w", m.Key, err)
			}
		}
		buf.WriteByte('}')
		return nil

	default:
		tag, text, ok := scalarParts(v)
		if !ok {
			return fmt.Errorf("unknown value type: %T", v)
		}
		buf.WriteString(`{"type":"`)
		buf.WriteString(tag)
		buf.WriteString(`","value":`)
		buf.WriteString(EscapeString(text))
		buf.WriteByte('}')
		return nil
	}
}
