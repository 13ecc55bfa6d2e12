package web

import (
	"errors"
	"net/http"

	"eventify/internal/domain"
	"eventify/internal/metrics"
	"eventify/internal/ports/input"
)

// HandleCreateSubmit stores the submitted event as typed and renders a fresh
// form with the success message.
func (h *Handler) HandleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	event, err := h.eventUseCase.CreateEvent(r.Context(), input.EventDraft{
		Title:       r.PostFormValue("title"),
		Date:        r.PostFormValue("date"),
		Location:    r.PostFormValue("location"),
		Description: r.PostFormValue("description"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.EventsCreated.Inc()
	loggerFrom(r.Context()).Info().Int64("event_id", event.ID).Msg("event created")

	h.render(w, r, http.StatusOK, pageCreate, createPage{page: h.newPage(r), Success: true})
}

// HandleRegister records a registration for ?id=. A blank name or email is
// dropped without a message.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	id := eventIDParam(r)
	if id == 0 {
		h.renderDetail(w, r, 0, false)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	_, err := h.registrationUseCase.Register(r.Context(), id, r.PostFormValue("name"), r.PostFormValue("email"))
	switch {
	case errors.Is(err, domain.ErrIncompleteRegistration):
		metrics.Registrations.WithLabelValues("dropped").Inc()
		h.renderDetail(w, r, id, false)
	case err != nil:
		h.fail(w, r, err)
	default:
		metrics.Registrations.WithLabelValues("stored").Inc()
		loggerFrom(r.Context()).Info().Int64("event_id", id).Msg("registration stored")
		h.renderDetail(w, r, id, true)
	}
}

// HandleThemeToggle flips the stored theme and sends the browser back.
func (h *Handler) HandleThemeToggle(w http.ResponseWriter, r *http.Request) {
	dark, err := h.themeUseCase.ToggleTheme(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	loggerFrom(r.Context()).Debug().Bool("dark", dark).Msg("theme toggled")
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}
