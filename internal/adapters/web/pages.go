package web

import (
	"errors"
	"net/http"
	"strings"

	"eventify/internal/domain"
)

// HandleHome renders the upcoming events listing.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, pageHome)
}

// HandleEvents renders the full events listing.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	h.handleListing(w, r, pageEvents)
}

func (h *Handler) handleListing(w http.ResponseWriter, r *http.Request, name string) {
	events, err := h.eventUseCase.ListEvents(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, name, listPage{page: h.newPage(r), Events: events})
}

// HandleCreateForm renders an empty create form.
func (h *Handler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageCreate, createPage{page: h.newPage(r)})
}

// HandleEventDetail renders one event. Unknown ids show only the not-found
// placeholder.
func (h *Handler) HandleEventDetail(w http.ResponseWriter, r *http.Request) {
	h.renderDetail(w, r, eventIDParam(r), false)
}

func (h *Handler) renderDetail(w http.ResponseWriter, r *http.Request, id int64, success bool) {
	data := detailPage{
		page:               h.newPage(r),
		EventID:            id,
		RegistrationActive: id != 0,
		Success:            success,
	}
	if id != 0 {
		event, err := h.eventUseCase.GetEventByID(r.Context(), id)
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
		case err != nil:
			h.fail(w, r, err)
			return
		default:
			data.Event = event
		}
	}
	h.render(w, r, http.StatusOK, pageDetail, data)
}

// HandleAdmin renders every event with its registrations.
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.adminUseCase.Summaries(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, pageAdmin, adminPage{page: h.newPage(r), Summaries: summaries})
}

// HandleOther serves the admin page for any other path mentioning "admin"
// and 404 for the rest.
func (h *Handler) HandleOther(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.URL.Path, "admin") {
		http.NotFound(w, r)
		return
	}
	h.HandleAdmin(w, r)
}

// HandleHealth answers liveness probes.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
