package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"eventify/internal/application"
	"eventify/internal/config"
	"eventify/internal/infrastructure/i18n"
	"eventify/internal/metrics"
	"eventify/internal/ports/output"
	"eventify/pkg/tz"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP adapter.
type Server struct {
	http    *http.Server
	handler *Handler
	logger  zerolog.Logger
}

// NewServer creates a Server and wires ports: output adapters -> application (use cases) -> handler.
func NewServer(
	cfg *config.Config,
	eventRepo output.EventRepository,
	registrationRepo output.RegistrationRepository,
	themeRepo output.ThemeRepository,
	logger zerolog.Logger,
) (*Server, error) {
	loc, ok := tz.Load(cfg.Render.Timezone)
	if !ok {
		logger.Warn().Str("timezone", cfg.Render.Timezone).Msg("unknown time zone, using UTC")
	}

	eventUC := application.NewEventService(eventRepo, loc)
	registrationUC := application.NewRegistrationService(registrationRepo)
	adminUC := application.NewAdminService(eventRepo, registrationRepo, loc)
	themeUC := application.NewThemeService(themeRepo, logger)

	renderer, err := NewRenderer(cfg.Render.EscapeHTML)
	if err != nil {
		return nil, err
	}
	translator := i18n.NewTranslator(cfg.Render.Locale, logger)
	handler := NewHandler(eventUC, registrationUC, adminUC, adminUC, themeUC, translator, renderer)

	s := &Server{handler: handler, logger: logger}
	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.routes(cfg.CSRF),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return s, nil
}

func (s *Server) routes(csrfCfg config.CSRFConfig) http.Handler {
	h := s.handler
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleHome)
	mux.HandleFunc("GET /index.html", h.HandleHome)
	mux.HandleFunc("GET /events.html", h.HandleEvents)
	mux.HandleFunc("GET /create.html", h.HandleCreateForm)
	mux.HandleFunc("POST /create.html", h.HandleCreateSubmit)
	mux.HandleFunc("GET /event.html", h.HandleEventDetail)
	mux.HandleFunc("POST /event.html", h.HandleRegister)
	mux.HandleFunc("GET /admin.html", h.HandleAdmin)
	mux.HandleFunc("GET /", h.HandleOther)
	mux.HandleFunc("GET /admin/export.csv", h.HandleExport)
	mux.HandleFunc("POST /theme", h.HandleThemeToggle)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = mux
	if csrfCfg.Key != "" {
		handler = CSRFProtection([]byte(csrfCfg.Key), csrfCfg.Secure)(handler)
		if !csrfCfg.Secure {
			handler = csrfPlaintext(handler)
		}
	}
	handler = RequestLogging(handler)
	handler = CorrelationID(s.logger)(handler)
	return metrics.HTTPMiddleware(handler)
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
