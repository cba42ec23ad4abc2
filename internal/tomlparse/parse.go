package tomlparse

import (
	"time"

	"github.com/tomltag/tomltag/internal/value"
)

// Parser wraps one external TOML parser implementation.
type Parser interface {
	// Name identifies the wrapped library, for diagnostics.
	Name() string

	// Parse parses a complete TOML document and returns its value tree.
	// On failure the error carries the wrapped parser's own diagnostic
	// text.
	Parse(input []byte) (value.Value, error)
}

// offsetDateTime converts a zoned time.Time to the model's
// offset-datetime, collapsing the zone to a single signed minute count.
func offsetDateTime(t time.Time) value.OffsetDateTime {
	_, offsetSeconds := t.Zone()
	return value.OffsetDateTime{
		Date:          clockDate(t),
		Time:          clockTime(t),
		OffsetMinutes: offsetSeconds / 60,
	}
}

func clockDate(t time.Time) value.LocalDate {
	return value.LocalDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func clockTime(t time.Time) value.LocalTime {
	return value.LocalTime{
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
}
