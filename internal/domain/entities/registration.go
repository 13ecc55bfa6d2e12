package entities

import "time"

// Registration records a person's interest in attending an event.
type Registration struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}

func (r *Registration) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}
