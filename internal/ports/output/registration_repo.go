package output

import (
	"context"

	"eventify/internal/domain/entities"
)

type RegistrationRepository interface {
	LoadFor(ctx context.Context, eventID int64) ([]entities.Registration, error)
	Append(ctx context.Context, eventID int64, registration entities.Registration) error
	CountAndList(ctx context.Context, eventID int64) (int, []entities.Registration, error)
}
