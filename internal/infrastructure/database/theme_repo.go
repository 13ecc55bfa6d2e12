package database

import (
	"context"
	"fmt"

	"eventify/internal/ports/output"
)

var _ output.ThemeRepository = (*ThemeRepository)(nil)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeRepository owns the "theme" flag. Anything other than "dark" reads as
// light.
type ThemeRepository struct {
	store output.Store
}

func NewThemeRepository(store output.Store) *ThemeRepository {
	return &ThemeRepository{store: store}
}

func (r *ThemeRepository) IsDark(ctx context.Context) (bool, error) {
	v, _, err := r.store.Get(ctx, KeyTheme)
	if err != nil {
		return false, fmt.Errorf("load theme: %w", err)
	}
	return v == ThemeDark, nil
}

func (r *ThemeRepository) Toggle(ctx context.Context) (bool, error) {
	var dark bool
	err := r.store.Update(ctx, KeyTheme, func(current string, _ bool) (string, error) {
		dark = current != ThemeDark
		if dark {
			return ThemeDark, nil
		}
		return ThemeLight, nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle theme: %w", err)
	}
	return dark, nil
}
