package tws

import (
	"fmt"
	"math"
	"strconv"
)

// Duration unit sizes in seconds. Months are 30 days, years 365.
const (
	SecondsPerDay   = 86400
	SecondsPerWeek  = 7 * SecondsPerDay
	SecondsPerMonth = 30 * SecondsPerDay
	SecondsPerYear  = 365 * SecondsPerDay
)

func unitSeconds(unit byte) (int64, bool) {
	switch unit {
	case 'S':
		return 1, true
	case 'D':
		return SecondsPerDay, true
	case 'W':
		return SecondsPerWeek, true
	case 'M':
		return SecondsPerMonth, true
	case 'Y':
		return SecondsPerYear, true
	default:
		return 0, false
	}
}

// DurationSeconds converts a duration string ("<integer> <S|D|W|M|Y>") to seconds.
// "30 D" -> 2592000, "1 Y" -> 31536000.
// Negative counts and results beyond the int32 range are rejected.
// Returns -1 and an error wrapping ErrParse on failure.
func DurationSeconds(dur string) (int, error) {
	n := len(dur)
	if n < 2 || dur[n-2] != ' ' {
		return -1, fmt.Errorf("%w: duration %q: want \"<integer> <unit>\"", ErrParse, dur)
	}

	unit, ok := unitSeconds(dur[n-1])
	if !ok {
		return -1, fmt.Errorf("%w: duration %q: unknown unit %q", ErrParse, dur, dur[n-1])
	}

	val, err := strconv.ParseInt(dur[:n-2], 10, 64)
	if err != nil {
		return -1, fmt.Errorf("%w: duration %q: bad count", ErrParse, dur)
	}
	if val < 0 || val > math.MaxInt32/unit {
		return -1, fmt.Errorf("%w: duration %q: count out of range", ErrParse, dur)
	}

	return int(val * unit), nil
}

// FormatDuration renders secs as a duration string in the largest unit that divides it
// exactly: 86400 -> "1 D", 90000 -> "90000 S".
func FormatDuration(secs int) string {
	switch {
	case secs <= 0:
		return "0 S"
	case secs%SecondsPerYear == 0:
		return strconv.Itoa(secs/SecondsPerYear) + " Y"
	case secs%SecondsPerMonth == 0:
		return strconv.Itoa(secs/SecondsPerMonth) + " M"
	case secs%SecondsPerWeek == 0:
		return strconv.Itoa(secs/SecondsPerWeek) + " W"
	case secs%SecondsPerDay == 0:
		return strconv.Itoa(secs/SecondsPerDay) + " D"
	default:
		return strconv.Itoa(secs) + " S"
	}
}
