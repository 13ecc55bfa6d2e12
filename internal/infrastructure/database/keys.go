package database

import "strconv"

// Key space shared by every store backend.
const (
	KeyEvents = "events"
	KeyTheme  = "theme"

	registrationsPrefix = "registrations-"
)

// RegistrationsKey derives the key holding the registrations of one event.
func RegistrationsKey(eventID int64) string {
	return registrationsPrefix + strconv.FormatInt(eventID, 10)
}
