package database

import (
	"context"
	"fmt"

	"eventify/internal/domain"
	"eventify/internal/domain/entities"
	"eventify/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository owns the "events" sequence.
type EventRepository struct {
	store output.Store
}

func NewEventRepository(store output.Store) *EventRepository {
	return &EventRepository{store: store}
}

// LoadAll returns every stored event in insertion order.
func (r *EventRepository) LoadAll(ctx context.Context) ([]entities.Event, error) {
	raw, found, err := r.store.Get(ctx, KeyEvents)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return decodeList[entities.Event](KeyEvents, raw, found)
}

// Append stores event at the end of the sequence. An ID that is zero or
// already taken is replaced by one greater than the largest stored ID.
func (r *EventRepository) Append(ctx context.Context, event entities.Event) (entities.Event, error) {
	err := r.store.Update(ctx, KeyEvents, func(current string, found bool) (string, error) {
		events, err := decodeList[entities.Event](KeyEvents, current, found)
		if err != nil {
			return "", err
		}
		var maxID int64
		taken := false
		for i := range events {
			maxID = max(maxID, events[i].ID)
			if events[i].ID == event.ID {
				taken = true
			}
		}
		if event.ID == 0 || taken {
			event.ID = maxID + 1
		}
		return encodeList(KeyEvents, append(events, event))
	})
	if err != nil {
		return entities.Event{}, fmt.Errorf("append event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	events, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("find event %d: %w", id, domain.ErrEventNotFound)
}
