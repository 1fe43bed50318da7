package tws

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Local-time layouts: "yyyy-mm-dd hh:mm:ss" and "yyyy-mm-dd hh:mm:ss.zzz".
const (
	LocalLayout       = "2006-01-02 15:04:05"
	LocalMillisLayout = LocalLayout + ".000"
)

var location atomic.Pointer[time.Location]

// SetLocation sets the zone used by FormatMillis and FormatTime.
// A nil location restores time.Local.
func SetLocation(loc *time.Location) {
	location.Store(loc)
}

// Location returns the zone used for local-time rendering.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// NowMillis returns the current time in milliseconds since epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatMillis renders milliseconds since epoch as local time "yyyy-mm-dd hh:mm:ss.zzz".
// The result is always 23 characters.
func FormatMillis(msecs int64) string {
	return FormatMillisIn(msecs, Location())
}

// FormatMillisIn is FormatMillis for an explicit zone.
// Panics if the instant cannot be rendered in the fixed-width layout (year outside 0-9999).
func FormatMillisIn(msecs int64, loc *time.Location) string {
	s := time.UnixMilli(msecs).In(loc).Format(LocalMillisLayout)
	if len(s) != len(LocalMillisLayout) {
		panic(fmt.Sprintf("tws: cannot render %d ms as local time: %q", msecs, s))
	}
	return s
}

// FormatTime renders seconds since epoch as local time "yyyy-mm-dd hh:mm:ss".
func FormatTime(secs int64) string {
	return FormatTimeIn(secs, Location())
}

// FormatTimeIn is FormatTime for an explicit zone.
func FormatTimeIn(secs int64, loc *time.Location) string {
	s := time.Unix(secs, 0).In(loc).Format(LocalLayout)
	if len(s) != len(LocalLayout) {
		panic(fmt.Sprintf("tws: cannot render %d s as local time: %q", secs, s))
	}
	return s
}
