package output

import "context"

type ThemeRepository interface {
	IsDark(ctx context.Context) (bool, error)
	// Toggle flips the theme and returns whether it is now dark.
	Toggle(ctx context.Context) (bool, error)
}
