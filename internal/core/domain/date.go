package domain

import (
	"fmt"
	"time"
)

// Wire keys of a date part within birthdays and events.
const (
	keyDateYear  = "year"
	keyDateMonth = "month"
	keyDateDay   = "day"
)

// DateValue is a possibly incomplete calendar date as used by the
// People API: anniversaries may omit the year, contract dates may omit
// the day, and so on. A zero component means absent. The zero value is
// the fully absent date.
type DateValue struct {
	year  int
	month int
	day   int
}

// NewDateValue builds a date from its components, where 0 marks an
// absent component. Present components are range-checked.
func NewDateValue(year, month, day int) (DateValue, error) {
	if year < 0 {
		return DateValue{}, fmt.Errorf("year must be greater than 0, got %d", year)
	}
	if month != 0 && (month < 1 || month > 12) {
		return DateValue{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if day != 0 && (day < 1 || day > 31) {
		return DateValue{}, fmt.Errorf("day must be between 1 and 31, got %d", day)
	}
	return DateValue{year: year, month: month, day: day}, nil
}

// DateFromTime builds a full date from a time.Time.
func DateFromTime(t time.Time) DateValue {
	return DateValue{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// dateFromWire reads a date from its raw part. Components <= 0 are
// treated as absent, matching the API's zero-filled wire form.
func dateFromWire(part map[string]any) DateValue {
	read := func(key string) int {
		n, _ := part[key].(float64)
		if n <= 0 {
			return 0
		}
		return int(n)
	}
	return DateValue{
		year:  read(keyDateYear),
		month: read(keyDateMonth),
		day:   read(keyDateDay),
	}
}

// wire renders the date part with zeroed absent components.
func (d DateValue) wire() map[string]any {
	return map[string]any{
		keyDateYear:  float64(d.year),
		keyDateMonth: float64(d.month),
		keyDateDay:   float64(d.day),
	}
}

// Year returns the year component and whether it is present.
func (d DateValue) Year() (int, bool) { return d.year, d.year != 0 }

// Month returns the month component and whether it is present.
func (d DateValue) Month() (int, bool) { return d.month, d.month != 0 }

// Day returns the day component and whether it is present.
func (d DateValue) Day() (int, bool) { return d.day, d.day != 0 }

// IsZero reports whether all components are absent.
func (d DateValue) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Equal reports component-wise equality, with absence distinguishing
// from any present value.
func (d DateValue) Equal(other DateValue) bool {
	return d == other
}

func (d DateValue) String() string {
	return fmt.Sprintf("DateValue(%d, %d, %d)", d.year, d.month, d.day)
}
