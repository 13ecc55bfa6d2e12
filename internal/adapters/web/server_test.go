package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/config"
	"eventify/internal/infrastructure/database"
)

const csrfKey = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Store:   config.StoreConfig{Driver: "memory"},
		Render:  config.RenderConfig{Locale: "en", Timezone: "UTC"},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) (http.Handler, *database.MemoryStore) {
	t.Helper()
	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}
	store := database.NewMemoryStore()
	srv, err := NewServer(cfg,
		database.NewEventRepository(store),
		database.NewRegistrationRepository(store),
		database.NewThemeRepository(store),
		zerolog.Nop(),
	)
	require.NoError(t, err)
	return srv.Handler(), store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func createEvent(t *testing.T, h http.Handler, title, date string) {
	t.Helper()
	rec := postForm(t, h, "/create.html", url.Values{
		"title":       {title},
		"date":        {date},
		"location":    {"Hall " + title},
		"description": {"About " + title},
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListings_EmptyPlaceholders(t *testing.T) {
	h, _ := newTestServer(t)

	for _, tc := range []struct {
		path, container, want string
	}{
		{"/", ".events-container", "📭 No upcoming events yet."},
		{"/index.html", ".events-container", "📭 No upcoming events yet."},
		{"/events.html", "#all-events", "📭 No events found."},
	} {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, h, tc.path)
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parse(t, rec)
			assert.Equal(t, tc.want, strings.TrimSpace(doc.Find(tc.container).Text()))
			assert.Zero(t, doc.Find(".event-card").Length())
		})
	}
}

func TestCreate_ShowsSuccessAndListsSortedByDate(t *testing.T) {
	h, _ := newTestServer(t)

	rec := postForm(t, h, "/create.html", url.Values{
		"title": {"March"}, "date": {"2025-03-01"}, "location": {"A"}, "description": {"a"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, "🎉 Event created successfully!", strings.TrimSpace(doc.Find("#success-msg").Text()))
	assert.Empty(t, doc.Find(`#create-event-form input[name="title"]`).AttrOr("value", ""))

	createEvent(t, h, "January", "2025-01-15")
	createEvent(t, h, "February", "2025-02-10")

	for _, path := range []string{"/", "/events.html"} {
		doc := parse(t, get(t, h, path))
		var titles []string
		doc.Find(".event-card h3").Each(func(_ int, s *goquery.Selection) {
			titles = append(titles, s.Text())
		})
		assert.Equal(t, []string{"January", "February", "March"}, titles, path)

		href, ok := doc.Find(".event-card a").First().Attr("href")
		require.True(t, ok)
		assert.Regexp(t, `^event\.html\?id=\d+$`, href)
	}
}

func TestEventDetail_Found(t *testing.T) {
	h, _ := newTestServer(t)
	createEvent(t, h, "<b>Gala</b>", "2025-06-01")

	href := parse(t, get(t, h, "/events.html")).Find(".event-card a").AttrOr("href", "")
	require.NotEmpty(t, href)

	doc := parse(t, get(t, h, "/"+href))
	assert.Equal(t, "<b>Gala</b>", doc.Find("#event-title").Text())
	assert.Equal(t, "2025-06-01", doc.Find("#event-date").Text())
	assert.Equal(t, "Hall <b>Gala</b>", doc.Find("#event-location").Text())
	assert.Equal(t, "About <b>Gala</b>", doc.Find("#event-description").Text())
	assert.Equal(t, 1, doc.Find("#register-form").Length())
	assert.NotContains(t, doc.Find(".event-details").Text(), "Event not found")
}

func TestEventDetail_NotFound(t *testing.T) {
	h, _ := newTestServer(t)
	createEvent(t, h, "Gala", "2025-06-01")

	for _, tc := range []struct {
		path       string
		formActive bool
	}{
		{"/event.html", false},
		{"/event.html?id=abc", false},
		{"/event.html?id=0", false},
		{"/event.html?id=42", true},
	} {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, h, tc.path)
			require.Equal(t, http.StatusOK, rec.Code)
			doc := parse(t, rec)
			assert.Equal(t, "⚠️ Event not found!", strings.TrimSpace(doc.Find(".event-details").Text()))
			assert.Zero(t, doc.Find("#event-title").Length())
			assert.Equal(t, tc.formActive, doc.Find("#register-form").Length() == 1)
		})
	}
}

func TestRegister_StoresAndShowsOnAdmin(t *testing.T) {
	h, _ := newTestServer(t)
	createEvent(t, h, "Gala", "2025-06-01")
	href := parse(t, get(t, h, "/events.html")).Find(".event-card a").AttrOr("href", "")

	rec := postForm(t, h, "/"+href, url.Values{"name": {"  Ann "}, "email": {"ann@example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	assert.Equal(t, "✅ Registered successfully!", strings.TrimSpace(doc.Find("#register-success").Text()))
	assert.Equal(t, "Gala", doc.Find("#event-title").Text())

	admin := parse(t, get(t, h, "/admin.html"))
	require.Equal(t, 1, admin.Find(".admin-event").Length())
	assert.Contains(t, admin.Find(".admin-event").Text(), "Registrations: 1")
	assert.Equal(t, "Ann (ann@example.com)", admin.Find(".admin-event li").Text())
}

func TestRegister_BlankFieldsDropped(t *testing.T) {
	h, _ := newTestServer(t)
	createEvent(t, h, "Gala", "2025-06-01")
	href := parse(t, get(t, h, "/events.html")).Find(".event-card a").AttrOr("href", "")

	for _, form := range []url.Values{
		{"name": {"   "}, "email": {"ann@example.com"}},
		{"name": {"Ann"}, "email": {""}},
	} {
		rec := postForm(t, h, "/"+href, form)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, strings.TrimSpace(parse(t, rec).Find("#register-success").Text()))
	}

	admin := parse(t, get(t, h, "/admin.html"))
	assert.Contains(t, admin.Find(".admin-event").Text(), "Registrations: 0")
	assert.Zero(t, admin.Find(".admin-event li").Length())
}

func TestRegister_WithoutIDDoesNothing(t *testing.T) {
	h, store := newTestServer(t)

	rec := postForm(t, h, "/event.html?id=0", url.Values{"name": {"Ann"}, "email": {"ann@example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, parse(t, rec).Find("#register-form").Length())

	_, found, err := store.Get(t.Context(), database.RegistrationsKey(0))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAdmin_Empty(t *testing.T) {
	h, _ := newTestServer(t)

	for _, path := range []string{"/admin.html", "/admin", "/admin/", "/pages/admin.html", "/administration"} {
		rec := get(t, h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		doc := parse(t, rec)
		assert.Equal(t, "⚠️ No events found.", strings.TrimSpace(doc.Find("#admin-events").Text()))
		assert.Equal(t, "/admin/export.csv", doc.Find("#export-csv").AttrOr("href", ""))
	}
}

func TestExport_ServesCSVAttachment(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(t, h, "/admin/export.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Event,Name,Email,Timestamp\n", rec.Body.String())

	createEvent(t, h, "Gala", "2025-06-01")
	href := parse(t, get(t, h, "/events.html")).Find(".event-card a").AttrOr("href", "")
	postForm(t, h, "/"+href, url.Values{"name": {"Ann"}, "email": {"ann@example.com"}})

	rec = get(t, h, "/admin/export.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=eventify-registrations.csv", rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Event,Name,Email,Timestamp", lines[0])
	assert.Regexp(t, regexp.MustCompile(`^"Gala","Ann","ann@example.com","\d{1,2}/\d{1,2}/\d{4}, \d{1,2}:\d{2}:\d{2} (AM|PM)"$`), lines[1])
}

func TestRender_RawAndEscapedModes(t *testing.T) {
	title := "<em>Gala</em>"
	desc := "<script>alert(1)</script><b>bold</b>"

	raw, _ := newTestServer(t)
	postForm(t, raw, "/create.html", url.Values{"title": {title}, "date": {"2025-06-01"}, "description": {desc}})
	doc := parse(t, get(t, raw, "/events.html"))
	assert.Equal(t, 1, doc.Find(".event-card h3 em").Length())
	assert.Equal(t, 1, doc.Find(".event-card script").Length())

	escaped, _ := newTestServer(t, func(c *config.Config) { c.Render.EscapeHTML = true })
	postForm(t, escaped, "/create.html", url.Values{"title": {title}, "date": {"2025-06-01"}, "description": {desc}})
	doc = parse(t, get(t, escaped, "/events.html"))
	assert.Zero(t, doc.Find(".event-card h3 em").Length())
	assert.Equal(t, title, doc.Find(".event-card h3").Text())
	assert.Zero(t, doc.Find(".event-card script").Length())
	assert.Equal(t, 1, doc.Find(".event-card b").Length())
}

func TestThemeToggle(t *testing.T) {
	h, _ := newTestServer(t)
	assert.Empty(t, parse(t, get(t, h, "/")).Find("body").AttrOr("class", ""))

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "http://localhost:8080/events.html")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events.html", rec.Header().Get("Location"))

	assert.Equal(t, "dark", parse(t, get(t, h, "/")).Find("body").AttrOr("class", ""))

	rec = postForm(t, h, "/theme", nil)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Empty(t, parse(t, get(t, h, "/")).Find("body").AttrOr("class", ""))
}

func TestBackTo(t *testing.T) {
	for _, tc := range []struct{ referer, want string }{
		{"", "/"},
		{"http://localhost/admin.html", "/admin.html"},
		{"http://localhost/event.html?id=7", "/event.html?id=7"},
		{"http://evil.example//phish", "/"},
		{"not a url %%", "/"},
	} {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		if tc.referer != "" {
			req.Header.Set("Referer", tc.referer)
		}
		assert.Equal(t, tc.want, backTo(req), tc.referer)
	}
}

func TestCorruptData_Returns500(t *testing.T) {
	h, store := newTestServer(t)
	require.NoError(t, store.Set(t.Context(), database.KeyEvents, "{not json"))

	rec := get(t, h, "/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Stored data could not be read.", strings.TrimSpace(parse(t, rec).Find(".error").Text()))
}

func TestLocaleNegotiation(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	doc := parse(t, rec)
	assert.Equal(t, "📭 Aucun événement à venir pour le moment.", strings.TrimSpace(doc.Find(".events-container").Text()))
	assert.Equal(t, "fr", doc.Find("html").AttrOr("lang", ""))
}

func TestUnbundledDefaultLocaleRendersEnglish(t *testing.T) {
	h, _ := newTestServer(t, func(c *config.Config) { c.Render.Locale = "de" })

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "📭 No upcoming events yet.", strings.TrimSpace(parse(t, rec).Find(".events-container").Text()))
}

func TestCSRF_RejectsFormWithoutToken(t *testing.T) {
	h, store := newTestServer(t, func(c *config.Config) { c.CSRF.Key = csrfKey })

	doc := parse(t, get(t, h, "/create.html"))
	assert.Positive(t, doc.Find(`#create-event-form input[name="gorilla.csrf.Token"]`).Length())

	rec := postForm(t, h, "/create.html", url.Values{"title": {"Gala"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, found, err := store.Get(t.Context(), database.KeyEvents)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOperationalEndpoints(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "eventify_http_requests_total")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/nope").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/events").Code)
}
