package datetime

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// Layouts tried before falling back to natural-language parsing. Date-only
// values are taken as UTC midnight, values with a clock time in the caller's
// zone.
var isoLayouts = []struct {
	layout string
	utc    bool
}{
	{"2006-01-02", true},
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
}

// ParseEventDate interprets a free-form event date. Clock times without an
// offset are read in loc (time.Local when nil). ok is false when nothing
// could be read from it.
func ParseEventDate(s string, loc *time.Location) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, l := range isoLayouts {
		in := loc
		if l.utc {
			in = time.UTC
		}
		if t, err := time.ParseInLocation(l.layout, s, in); err == nil {
			return t, true
		}
	}
	parsed, err := dps.Parse(&dps.Configuration{DefaultTimezone: loc}, s)
	if err != nil || parsed.Time.IsZero() {
		return time.Time{}, false
	}
	return parsed.Time, true
}

// LocaleLayout mirrors the en-US output of a browser's Date.toLocaleString().
const LocaleLayout = "1/2/2006, 3:04:05 PM"

// FormatLocale renders epoch millis in loc using LocaleLayout.
func FormatLocale(millis int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(millis).In(loc).Format(LocaleLayout)
}
