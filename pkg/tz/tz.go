package tz

import "time"

// Load resolves an IANA zone name. An empty name means the host's local zone;
// an unknown name falls back to UTC and reports ok=false.
func Load(name string) (loc *time.Location, ok bool) {
	if name == "" || name == "Local" {
		return time.Local, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, false
	}
	return loc, true
}
