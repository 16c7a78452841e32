package sovereigntax

import (
	"fmt"
	"strings"
	"time"
)

// Transactions carry full timestamps because same-day events must keep
// their relative order, but all tax arithmetic below is day-granular:
// holding periods and transfer distances compare calendar days, not
// instants.

// displayDateFormat is the format used in warning strings.
const displayDateFormat = "Jan 2, 2006"

// dateOf truncates an instant to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from one instant to
// a later one.
func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

// isLongTermHolding reports whether a disposal qualifies as long-term under
// IRC §1222: the sale day must be strictly after the day exactly one
// calendar year past the acquisition day. Adding a calendar year (not 365
// days) makes leap years come out right; a lot bought 2021-01-15 is still
// short-term when sold 2022-01-15 and long-term from 2022-01-16 on.
func isLongTermHolding(acquired, sold time.Time) bool {
	return dateOf(sold).After(dateOf(acquired).AddDate(1, 0, 0))
}

// ParseTime parses a transaction timestamp from user input. It accepts a
// full RFC 3339 timestamp or a bare date, which is read as midnight UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, want %q or %q", s, "2006-01-02", time.RFC3339)
	}
	return t, nil
}
