package output

import (
	"context"

	"eventify/internal/domain/entities"
)

type EventRepository interface {
	LoadAll(ctx context.Context) ([]entities.Event, error)
	Append(ctx context.Context, event entities.Event) (entities.Event, error)
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
}
