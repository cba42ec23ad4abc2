package tomlparse

import (
	"fmt"
	"sort"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/tomltag/tomltag/internal/value"
)

// GoTOML wraps github.com/pelletier/go-toml/v2.
//
// The library surfaces tables as Go maps, which carry no source order,
// so table members are ordered lexicographically by key. Output stays
// deterministic; the harness compares JSON structurally and does not
// depend on member order.
type GoTOML struct{}

func (GoTOML) Name() string { return "go-toml" }

func (GoTOML) Parse(input []byte) (value.Value, error) {
	var raw map[string]any
	if err := gotoml.Unmarshal(input, &raw); err != nil {
		return nil, err
	}
	return goTOMLTable(raw)
}

func goTOMLTable(m map[string]any) (value.Table, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := make(value.Table, 0, len(keys))
	for _, k := range keys {
		v, err := goTOMLValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		t = append(t, value.Member{Key: k, Value: v})
	}
	return t, nil
}

func goTOMLValue(v any) (value.Value, error) {
	switch x := v.(type) {
	case bool:
		return value.Bool(x), nil
	case int64:
		return value.Integer(x), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case gotoml.LocalDate:
		return value.LocalDate{Year: x.Year, Month: x.Month, Day: x.Day}, nil
	case gotoml.LocalTime:
		return goTOMLTime(x), nil
	case gotoml.LocalDateTime:
		return value.LocalDateTime{
			Date: value.LocalDate{Year: x.Year, Month: x.Month, Day: x.Day},
			Time: goTOMLTime(x.LocalTime),
		}, nil
	case time.Time:
		// Only offset datetimes reach here; local variants come out of
		// the library as the Local* types above.
		return offsetDateTime(x), nil
	case []any:
		arr := make(value.Array, len(x))
		for i, elem := range x {
			ev, err := goTOMLValue(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = ev
		}
		return arr, nil
	case []map[string]any:
		arr := make(value.Array, len(x))
		for i, elem := range x {
			et, err := goTOMLTable(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = et
		}
		return arr, nil
	case map[string]any:
		return goTOMLTable(x)
	default:
		return nil, fmt.Errorf("unsupported go-toml output type %T", v)
	}
}

func goTOMLTime(t gotoml.LocalTime) value.LocalTime {
	return value.LocalTime{
		Hour:        t.Hour,
		Minute:      t.Minute,
		Second:      t.Second,
		Microsecond: t.Nanosecond / 1000,
	}
}
