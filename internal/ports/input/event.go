package input

import (
	"context"

	"eventify/internal/domain/entities"
)

// EventDraft carries the create form fields verbatim.
type EventDraft struct {
	Title       string
	Date        string
	Location    string
	Description string
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, draft EventDraft) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	GetEventByID(ctx context.Context, id int64) (*entities.Event, error)
}

type AdminUseCase interface {
	Summaries(ctx context.Context) ([]entities.EventSummary, error)
}

type ThemeUseCase interface {
	IsDark(ctx context.Context) bool
	ToggleTheme(ctx context.Context) (bool, error)
}
