package database

import (
	"context"
	"fmt"

	"eventify/internal/domain/entities"
	"eventify/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

// RegistrationRepository owns the per-event "registrations-<id>" sequences.
// Nothing ties a sequence to an existing event.
type RegistrationRepository struct {
	store output.Store
}

func NewRegistrationRepository(store output.Store) *RegistrationRepository {
	return &RegistrationRepository{store: store}
}

func (r *RegistrationRepository) LoadFor(ctx context.Context, eventID int64) ([]entities.Registration, error) {
	key := RegistrationsKey(eventID)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	return decodeList[entities.Registration](key, raw, found)
}

func (r *RegistrationRepository) Append(ctx context.Context, eventID int64, registration entities.Registration) error {
	key := RegistrationsKey(eventID)
	err := r.store.Update(ctx, key, func(current string, found bool) (string, error) {
		regs, err := decodeList[entities.Registration](key, current, found)
		if err != nil {
			return "", err
		}
		return encodeList(key, append(regs, registration))
	})
	if err != nil {
		return fmt.Errorf("append registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) CountAndList(ctx context.Context, eventID int64) (int, []entities.Registration, error) {
	regs, err := r.LoadFor(ctx, eventID)
	if err != nil {
		return 0, nil, err
	}
	return len(regs), regs, nil
}
