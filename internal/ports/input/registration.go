package input

import (
	"context"
	"io"

	"eventify/internal/domain/entities"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, eventID int64, name, email string) (*entities.Registration, error)
}

type ExportUseCase interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}
