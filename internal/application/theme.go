package application

import (
	"context"

	"github.com/rs/zerolog"

	"eventify/internal/ports/input"
	"eventify/internal/ports/output"
)

var _ input.ThemeUseCase = (*ThemeService)(nil)

type ThemeService struct {
	themeRepo output.ThemeRepository
	logger    zerolog.Logger
}

func NewThemeService(themeRepo output.ThemeRepository, logger zerolog.Logger) *ThemeService {
	return &ThemeService{themeRepo: themeRepo, logger: logger}
}

// IsDark reports the stored theme. A read failure is logged and reads as
// light so that pages still render.
func (s *ThemeService) IsDark(ctx context.Context) bool {
	dark, err := s.themeRepo.IsDark(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("theme lookup failed")
		return false
	}
	return dark
}

func (s *ThemeService) ToggleTheme(ctx context.Context) (bool, error) {
	return s.themeRepo.Toggle(ctx)
}
