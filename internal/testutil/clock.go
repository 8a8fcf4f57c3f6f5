package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MorningOf returns a clock fixed at 09:00 UTC on the given day, clear of any midnight boundary.
func MorningOf(year int, month time.Month, day int) func() time.Time {
	return NowAt(time.Date(year, month, day, 9, 0, 0, 0, time.UTC))
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
