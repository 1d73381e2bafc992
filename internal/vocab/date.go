package vocab

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of a practice date.
const DateLayout = "2006-01-02"

// Today returns the local practice date for now.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD practice date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ShiftDate moves a practice date by days. Unparseable input is returned
// unchanged.
func ShiftDate(date string, days int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// DisplayDate renders a practice date as M/D/YYYY. Unparseable input is
// returned unchanged.
func DisplayDate(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("1/2/2006")
}
