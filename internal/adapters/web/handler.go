package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"eventify/internal/ports/input"
	"eventify/internal/ports/output"
)

// Localizer translates messages and picks a locale for a request.
type Localizer interface {
	output.T
	Negotiate(acceptLanguage string) string
}

// Handler serves the pages and forms using use cases.
type Handler struct {
	eventUseCase        input.EventUseCase
	registrationUseCase input.RegistrationUseCase
	adminUseCase        input.AdminUseCase
	exportUseCase       input.ExportUseCase
	themeUseCase        input.ThemeUseCase
	localizer           Localizer
	renderer            *Renderer
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	registrationUseCase input.RegistrationUseCase,
	adminUseCase input.AdminUseCase,
	exportUseCase input.ExportUseCase,
	themeUseCase input.ThemeUseCase,
	localizer Localizer,
	renderer *Renderer,
) *Handler {
	return &Handler{
		eventUseCase:        eventUseCase,
		registrationUseCase: registrationUseCase,
		adminUseCase:        adminUseCase,
		exportUseCase:       exportUseCase,
		themeUseCase:        themeUseCase,
		localizer:           localizer,
		renderer:            renderer,
	}
}

func (h *Handler) newPage(r *http.Request) page {
	return page{
		Locale:    h.localizer.Negotiate(r.Header.Get("Accept-Language")),
		Dark:      h.themeUseCase.IsDark(r.Context()),
		CSRFField: csrf.TemplateField(r),
		tr:        h.localizer,
	}
}

// eventIDParam reads ?id=. Anything that is not an integer reads as 0, which
// never names an event.
func eventIDParam(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
