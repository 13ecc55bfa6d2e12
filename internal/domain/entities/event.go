package entities

import (
	"slices"
	"time"

	"eventify/pkg/datetime"
)

// Event is a user-created happening. Fields are stored exactly as submitted.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// When interprets Date as a calendar date, reading clock times in loc. ok is
// false when the text cannot be understood as a date.
func (e *Event) When(loc *time.Location) (t time.Time, ok bool) {
	return datetime.ParseEventDate(e.Date, loc)
}

// EventSummary pairs an event with its registrations for the admin view.
type EventSummary struct {
	Event         Event
	Registrations []Registration
}

func (s EventSummary) Count() int {
	return len(s.Registrations)
}

// SortedByDate returns a copy of events ordered by calendar date, oldest
// first. Equal dates keep their relative order; dates that cannot be read
// go last. Clock times without an offset are read in loc.
func SortedByDate(events []Event, loc *time.Location) []Event {
	type keyed struct {
		event Event
		when  time.Time
		ok    bool
	}
	ks := make([]keyed, len(events))
	for i := range events {
		when, ok := events[i].When(loc)
		ks[i] = keyed{event: events[i], when: when, ok: ok}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return a.when.Compare(b.when)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})
	out := make([]Event, len(ks))
	for i := range ks {
		out[i] = ks[i].event
	}
	return out
}
