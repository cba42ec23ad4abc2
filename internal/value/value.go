package value

// Value is a sealed interface over the closed set of TOML value kinds.
// Only Bool, Integer, Float, String, LocalTime, LocalDate, LocalDateTime,
// OffsetDateTime, Array, and Table implement it.
type Value interface {
	tomlValue() // Sealed - only these types implement it
}

// Bool represents a TOML boolean.
type Bool bool

func (Bool) tomlValue() {}

// Integer represents a TOML integer. Always int64.
type Integer int64

func (Integer) tomlValue() {}

// Float represents a TOML float, including NaN and the infinities.
type Float float64

func (Float) tomlValue() {}

// String represents a TOML string, held as UTF-8 bytes.
type String string

func (String) tomlValue() {}

// LocalTime is a wall-clock time with no date and no zone.
// Sub-second precision stops at the microsecond; anything finer was
// already lost upstream.
type LocalTime struct {
	Hour        int // 0-23
	Minute      int // 0-59
	Second      int // 0-59
	Microsecond int // 0-999999
}

func (LocalTime) tomlValue() {}

// LocalDate is a calendar date with no time and no zone.
type LocalDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

func (LocalDate) tomlValue() {}

// LocalDateTime is a date and time with no zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

func (LocalDateTime) tomlValue() {}

// OffsetDateTime is a date and time with a fixed UTC offset.
//
// The offset is a single signed minute count in [-1439, 1439]. Modeling
// it as one field rules out the sign-inconsistency bugs that separate
// signed hour/minute fields invite.
type OffsetDateTime struct {
	Date          LocalDate
	Time          LocalTime
	OffsetMinutes int
}

func (OffsetDateTime) tomlValue() {}

// Array is an ordered sequence of values. Element kinds may differ.
type Array []Value

func (Array) tomlValue() {}

// Member is one key/value pair of a Table.
type Member struct {
	Key   string
	Value Value
}

// Table is an ordered sequence of members. Keys are unique by
// construction upstream; this package does not re-validate that.
type Table []Member

func (Table) tomlValue() {}

// M is a shorthand Member constructor for ergonomic table building.
// Example: Table{M("name", String("cart")), M("count", Integer(5))}
func M(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Keys returns the table's keys in definition order.
func (t Table) Keys() []string {
	keys := make([]string, len(t))
	for i, m := range t {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the value for key and whether the key is present.
func (t Table) Get(key string) (Value, bool) {
	for _, m := range t {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}
