package tws

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Platform date encodings.
const (
	DateLayout     = "20060102"
	DateTimeLayout = "20060102 15:04:05"
	clockLayout    = "15:04:05"
)

// ISO renderings produced by DateToISO.
const (
	ISODateLayout     = "2006-01-02"
	ISODateTimeLayout = "2006-01-02 15:04:05"
)

// ErrParse is returned (wrapped) for malformed platform strings.
var ErrParse = errors.New("tws: parse error")

// ParseDateTime parses "YYYYMMDD" or "YYYYMMDD HH:MM:SS".
// Any run of whitespace (including none) may separate date and clock.
// The whole input must be consumed. The result carries no zone and is returned in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, _, err := parseDateTime(s)
	return t, err
}

// parseDateTime also reports whether s carried a time of day.
// Date-only is tried first: the date-time separator matches zero characters.
func parseDateTime(s string) (time.Time, bool, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, false, nil
	}

	if len(s) > len(DateLayout) {
		date, err := time.Parse(DateLayout, s[:len(DateLayout)])
		if err == nil {
			rest := strings.TrimLeft(s[len(DateLayout):], " \t\n\v\f\r")
			clock, err := time.Parse(clockLayout, rest)
			if err == nil {
				t := time.Date(date.Year(), date.Month(), date.Day(),
					clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
				return t, true, nil
			}
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: date %q is neither YYYYMMDD nor YYYYMMDD HH:MM:SS", ErrParse, s)
}

// DateToISO converts a platform date to "YYYY-MM-DD" and a platform date-time
// to "YYYY-MM-DD HH:MM:SS". The result is always a valid date.
// Returns "" for malformed input or invalid dates.
func DateToISO(s string) string {
	t, hasClock, err := parseDateTime(s)
	if err != nil {
		return ""
	}
	if hasClock {
		return t.Format(ISODateTimeLayout)
	}
	return t.Format(ISODateLayout)
}

// FormatDateTime renders t in the platform date-time encoding "YYYYMMDD HH:MM:SS".
// The clock fields are taken as-is; no zone conversion is applied.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDate renders t in the platform date encoding "YYYYMMDD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
