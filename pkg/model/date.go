package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no zone. Remote due
// timestamps are truncated to this on the way in; weekdays are always
// re-derived from the calendar, never trusted from a source string.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateFormatError reports a due-date string that could not be parsed.
// It is distinct from an absent date: callers must never collapse a
// parse failure into "no due date".
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &DateFormatError{Value: s, Err: err}
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Weekday computes the day of the week by calendar arithmetic.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Org renders the date as it appears inside an org timestamp, e.g.
// "2024-03-01 Fri".
func (d Date) Org() string {
	return d.String() + " " + d.Weekday().String()[:3]
}
