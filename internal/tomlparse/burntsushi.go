package tomlparse

import (
	"fmt"
	"sort"
	"strings"
	"time"

	bstoml "github.com/BurntSushi/toml"

	"github.com/tomltag/tomltag/internal/value"
)

// BurntSushi wraps github.com/BurntSushi/toml.
//
// Decode metadata lists every key in document order, which lets this
// backend rebuild source key order for table members. Keys the index
// cannot place fall back to lexicographic order rather than being
// dropped.
type BurntSushi struct{}

func (BurntSushi) Name() string { return "burntsushi-toml" }

func (BurntSushi) Parse(input []byte) (value.Value, error) {
	var raw map[string]any
	md, err := bstoml.Decode(string(input), &raw)
	if err != nil {
		return nil, err
	}
	conv := burntSushiConv{order: newKeyOrder(md.Keys())}
	return conv.table(raw, nil)
}

// keyOrder maps a table path to its child key names in order of first
// appearance in the document. Paths are joined with NUL since TOML keys
// may themselves contain dots.
type keyOrder map[string][]string

func newKeyOrder(keys []bstoml.Key) keyOrder {
	idx := make(keyOrder)
	seen := make(map[string]bool)
	for _, k := range keys {
		for i := range k {
			id := pathID(k[:i+1])
			if seen[id] {
				continue
			}
			seen[id] = true
			parent := pathID(k[:i])
			idx[parent] = append(idx[parent], k[i])
		}
	}
	return idx
}

func pathID(path []string) string {
	return strings.Join(path, "\x00")
}

type burntSushiConv struct {
	order keyOrder
}

func (c burntSushiConv) table(m map[string]any, path []string) (value.Table, error) {
	keys := make([]string, 0, len(m))
	used := make(map[string]bool, len(m))
	for _, k := range c.order[pathID(path)] {
		if _, ok := m[k]; ok && !used[k] {
			used[k] = true
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(m)-len(keys))
	for k := range m {
		if !used[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	t := make(value.Table, 0, len(keys))
	for _, k := range keys {
		v, err := c.value(m[k], append(path, k))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		t = append(t, value.Member{Key: k, Value: v})
	}
	return t, nil
}

func (c burntSushiConv) value(v any, path []string) (value.Value, error) {
	switch x := v.(type) {
	case bool:
		return value.Bool(x), nil
	case int64:
		return value.Integer(x), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case time.Time:
		return c.datetime(x), nil
	case map[string]any:
		return c.table(x, path)
	case []map[string]any:
		// Array-of-tables shape. Elements share the path, so members of
		// every element follow the same first-seen order.
		arr := make(value.Array, len(x))
		for i, elem := range x {
			et, err := c.table(elem, path)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = et
		}
		return arr, nil
	case []any:
		arr := make(value.Array, len(x))
		for i, elem := range x {
			ev, err := c.value(elem, path)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = ev
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unsupported burntsushi-toml output type %T", v)
	}
}

// datetime classifies a decoded time.Time. The library models the
// offset-less TOML kinds as time.Time in sentinel zones named after the
// conformance tags; anything else is a true offset datetime.
func (c burntSushiConv) datetime(t time.Time) value.Value {
	switch t.Location().String() {
	case "datetime-local":
		return value.LocalDateTime{Date: clockDate(t), Time: clockTime(t)}
	case "date-local":
		return clockDate(t)
	case "time-local":
		return clockTime(t)
	}
	return offsetDateTime(t)
}
