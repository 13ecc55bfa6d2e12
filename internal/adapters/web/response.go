package web

import (
	"net/http"
	"net/url"
	"strings"

	"eventify/internal/domain"
)

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, name, data); err != nil {
		loggerFrom(r.Context()).Error().Err(err).Str("page", name).Msg("render failed")
	}
}

// fail logs err and answers 500 with a translated, generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	loggerFrom(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")

	p := h.newPage(r)
	key := "errors.generic"
	if domain.Code(err) == "corrupt_data" {
		key = "errors.corrupt_data"
	}
	h.render(w, r, http.StatusInternalServerError, pageError, errorPage{page: p, Message: p.T(key)})
}

// backTo returns the local path of the Referer, or "/".
func backTo(r *http.Request) string {
	u, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return u.RequestURI()
}
