package tagjson

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomltag/tomltag/internal/value"
)

func TestScalarTags(t *testing.T) {
	tests := []struct {
		name string
		in   value.Value
		tag  string
		text string
	}{
		{"bool true", value.Bool(true), "bool", "true"},
		{"bool false", value.Bool(false), "bool", "false"},
		{"integer", value.Integer(42), "integer", "42"},
		{"integer min", value.Integer(math.MinInt64), "integer", "-9223372036854775808"},
		{"integer max", value.Integer(math.MaxInt64), "integer", "9223372036854775807"},
		{"string", value.String("hi"), "string", "hi"},
		{"float", value.Float(-1.5), "float", "-1.5"},
		{"time-local", value.LocalTime{Hour: 7, Minute: 32, Second: 1}, "time-local", "07:32:01"},
		{"date-local", value.LocalDate{Year: 1979, Month: 5, Day: 27}, "date-local", "1979-05-27"},
		{
			"datetime-local",
			value.LocalDateTime{
				Date: value.LocalDate{Year: 1979, Month: 5, Day: 27},
				Time: value.LocalTime{Hour: 7, Minute: 32},
			},
			"datetime-local", "1979-05-27T07:32:00",
		},
		{
			"datetime",
			value.OffsetDateTime{
				Date: value.LocalDate{Year: 1979, Month: 5, Day: 27},
				Time: value.LocalTime{Hour: 7, Minute: 32},
			},
			"datetime", "1979-05-27T07:32:00+00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, text, ok := scalarParts(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestScalarPartsRejectsContainers(t *testing.T) {
	_, _, ok := scalarParts(value.Array{})
	assert.False(t, ok)
	_, _, ok = scalarParts(value.Table{})
	assert.False(t, ok)
}

func TestFormatFloatSpecials(t *testing.T) {
	assert.Equal(t, "nan", formatFloat(math.NaN()))
	assert.Equal(t, "inf", formatFloat(math.Inf(1)))
	assert.Equal(t, "-inf", formatFloat(math.Inf(-1)))
}

func TestFormatFloatRoundTrip(t *testing.T) {
	// Every finite double must decode back bit-for-bit.
	cases := []float64{
		0.0,
		math.Copysign(0, -1),
		1e308,
		math.SmallestNonzeroFloat64,
		-1.5,
		3.14,
		math.MaxFloat64,
		1.0 / 3.0,
		6.626e-34,
	}

	for _, f := range cases {
		s := formatFloat(f)
		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "parsing %q", s)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(back), "round-trip of %q", s)
	}
}

func TestFormatFloatNegativeZeroKeepsSign(t *testing.T) {
	assert.Equal(t, "-0", formatFloat(math.Copysign(0, -1)))
}

func TestFormatLocalTimeFraction(t *testing.T) {
	tests := []struct {
		name     string
		in       value.LocalTime
		expected string
	}{
		{"midnight no fraction", value.LocalTime{}, "00:00:00"},
		{"zero microsecond omits dot", value.LocalTime{Hour: 7, Minute: 32, Second: 0}, "07:32:00"},
		{"half second", value.LocalTime{Hour: 7, Minute: 32, Second: 0, Microsecond: 500000}, "07:32:00.500000"},
		{"one microsecond zero-padded", value.LocalTime{Hour: 23, Minute: 59, Second: 59, Microsecond: 1}, "23:59:59.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatLocalTime(tt.in))
		})
	}
}

func TestFormatLocalDateZeroPadding(t *testing.T) {
	assert.Equal(t, "0197-01-02", formatLocalDate(value.LocalDate{Year: 197, Month: 1, Day: 2}))
}

func TestFormatOffsetSign(t *testing.T) {
	base := value.OffsetDateTime{
		Date: value.LocalDate{Year: 1979, Month: 5, Day: 27},
		Time: value.LocalTime{Hour: 7, Minute: 32},
	}

	tests := []struct {
		name    string
		minutes int
		suffix  string
	}{
		{"zero is always plus", 0, "+00:00"},
		{"negative", -330, "-05:30"},
		{"positive", 330, "+05:30"},
		{"max", 1439, "+23:59"},
		{"min", -1439, "-23:59"},
		{"whole hours", -420, "-07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := base
			dt.OffsetMinutes = tt.minutes
			assert.Equal(t, "1979-05-27T07:32:00"+tt.suffix, formatOffsetDateTime(dt))
		})
	}
}
