package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"eventify/internal/domain/entities"
	"eventify/internal/ports/output"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	pageHome   = "index"
	pageEvents = "events"
	pageCreate = "create"
	pageDetail = "event"
	pageAdmin  = "admin"
	pageError  = "error"
)

var pageNames = []string{pageHome, pageEvents, pageCreate, pageDetail, pageAdmin, pageError}

// Renderer executes the embedded page templates. Each page is parsed together
// with the shared layout.
type Renderer struct {
	pages  map[string]*template.Template
	escape bool
	policy *bluemonday.Policy
}

// NewRenderer parses every page. With escape unset, user text in listings and
// the admin view is inserted into the markup as typed.
func NewRenderer(escape bool) (*Renderer, error) {
	r := &Renderer{
		pages:  make(map[string]*template.Template, len(pageNames)),
		escape: escape,
		policy: bluemonday.UGCPolicy(),
	}
	funcs := template.FuncMap{
		"text": r.text,
		"rich": r.rich,
	}
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) text(s string) template.HTML {
	if r.escape {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(s)
}

func (r *Renderer) rich(s string) template.HTML {
	if r.escape {
		return template.HTML(r.policy.Sanitize(s))
	}
	return template.HTML(s)
}

// Render writes the page only once it executed completely.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// page holds what the layout needs on every request.
type page struct {
	Locale    string
	Dark      bool
	CSRFField template.HTML
	tr        output.T
}

// T translates key for the negotiated locale.
func (p page) T(key string) string {
	return p.tr.T(p.Locale, key, nil)
}

type listPage struct {
	page
	Events []entities.Event
}

type createPage struct {
	page
	Success bool
}

type detailPage struct {
	page
	Event              *entities.Event
	EventID            int64
	RegistrationActive bool
	Success            bool
}

type adminPage struct {
	page
	Summaries []entities.EventSummary
}

type errorPage struct {
	page
	Message string
}
