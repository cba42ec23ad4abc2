package tagjson

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tomltag/tomltag/internal/value"
)

// scalarParts maps a scalar to its (type tag, value string) pair.
// The third return is false for Array and Table, which are not scalars.
func scalarParts(v value.Value) (tag string, text string, ok bool) {
	switch x := v.(type) {
	case value.Bool:
		return "bool", strconv.FormatBool(bool(x)), true
	case value.Integer:
		return "integer", strconv.FormatInt(int64(x), 10), true
	case value.Float:
		return "float", formatFloat(float64(x)), true
	case value.String:
		return "string", string(x), true
	case value.LocalTime:
		return "time-local", formatLocalTime(x), true
	case value.LocalDate:
		return "date-local", formatLocalDate(x), true
	case value.LocalDateTime:
		return "datetime-local", formatLocalDateTime(x), true
	case value.OffsetDateTime:
		return "datetime", formatOffsetDateTime(x), true
	default:
		return "", "", false
	}
}

// formatFloat renders f so that parsing the result yields f bit-for-bit.
// The shortest round-trip form is used; NaN and the infinities get the
// spellings the harness expects, with the sign taken from the sign bit.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 0) {
		if math.Signbit(f) {
			return "-inf"
		}
		return "inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatLocalTime renders HH:MM:SS, appending a 6-digit fractional part
// only when the microsecond component is non-zero.
func formatLocalTime(t value.LocalTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", t.Microsecond)
	}
	return s
}

func formatLocalDate(d value.LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatLocalDateTime(dt value.LocalDateTime) string {
	return formatLocalDate(dt.Date) + "T" + formatLocalTime(dt.Time)
}

// formatOffsetDateTime appends the zone offset as ±HH:MM. The sign is
// '-' only for a strictly negative minute count; offset zero always
// renders +00:00, never -00:00.
func formatOffsetDateTime(dt value.OffsetDateTime) string {
	sign := byte('+')
	off := dt.OffsetMinutes
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%sT%s%c%02d:%02d",
		formatLocalDate(dt.Date), formatLocalTime(dt.Time), sign, off/60, off%60)
}
