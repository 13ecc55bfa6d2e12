package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound          = errors.New("event not found")
	ErrIncompleteRegistration = errors.New("registration requires a name and an email")
	ErrCorruptData            = errors.New("stored data is not valid JSON")
)

// Code returns a stable short code for a domain error, used as a message key
// suffix by the presentation layer. It returns "" for non-domain errors.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrIncompleteRegistration):
		return "incomplete_registration"
	case errors.Is(err, ErrCorruptData):
		return "corrupt_data"
	default:
		return ""
	}
}
