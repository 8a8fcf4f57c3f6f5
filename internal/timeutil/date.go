package timeutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// isoLayouts are the string shapes the league API uses for dates, most specific last.
var isoLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	time.RFC3339Nano,
}

// Date is a calendar day with no time-of-day or zone.
// It decodes from either a [year, month, day] JSON array or an ISO string and always encodes as YYYY-MM-DD.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date without validation; use ParseDateParts for untrusted input.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in its own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDateParts accepts a 3-element integer tuple or an ISO date string.
func ParseDateParts(input any) (Date, error) {
	switch v := input.(type) {
	case Date:
		return validParts(input, v.Year, v.Month, v.Day)
	case *Date:
		if v == nil {
			return Date{}, &FormatError{Input: input, Reason: "nil date"}
		}
		return validParts(input, v.Year, v.Month, v.Day)
	case string:
		return parseISO(v)
	case [3]int:
		return validParts(input, v[0], v[1], v[2])
	case []int:
		if len(v) != 3 {
			return Date{}, &FormatError{Input: input, Reason: "expected [year, month, day]"}
		}
		return validParts(input, v[0], v[1], v[2])
	case []float64:
		parts := make([]any, len(v))
		for i, f := range v {
			parts[i] = f
		}
		return parseTuple(input, parts)
	case []any:
		return parseTuple(input, v)
	default:
		return Date{}, &FormatError{Input: input, Reason: fmt.Sprintf("unsupported type %T", input)}
	}
}

// MustDate parses input with ParseDateParts and panics on failure; intended for tests and constants.
func MustDate(input any) Date {
	d, err := ParseDateParts(input)
	if err != nil {
		panic(err)
	}
	return d
}

func parseTuple(input any, parts []any) (Date, error) {
	if len(parts) != 3 {
		return Date{}, &FormatError{Input: input, Reason: "expected [year, month, day]"}
	}
	var ints [3]int
	for i, p := range parts {
		n, ok := integral(p)
		if !ok {
			return Date{}, &FormatError{Input: input, Reason: fmt.Sprintf("element %d is not an integer", i)}
		}
		ints[i] = n
	}
	return validParts(input, ints[0], ints[1], ints[2])
}

func integral(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func parseISO(raw string) (Date, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Date{}, &FormatError{Input: raw, Reason: "empty string"}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return validParts(raw, t.Year(), int(t.Month()), t.Day())
		}
	}
	return Date{}, &FormatError{Input: raw, Reason: "expected ISO date"}
}

// Four-digit years only; wider values overflow DaysUntil's duration arithmetic.
const (
	minYear = 1
	maxYear = 9999
)

func validParts(input any, year, month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, &FormatError{Input: input, Reason: "year out of range"}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, &FormatError{Input: input, Reason: "month or day out of range"}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return Date{}, &FormatError{Input: input, Reason: "no such calendar day"}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Time returns midnight of the date in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON always writes the ISO form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a [year, month, day] array or an ISO string. JSON null leaves d untouched.
func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var raw any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return &FormatError{Input: string(trimmed), Reason: err.Error()}
	}
	parsed, err := ParseDateParts(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
