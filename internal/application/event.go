package application

import (
	"context"
	"time"

	"eventify/internal/domain/entities"
	"eventify/internal/ports/input"
	"eventify/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	loc       *time.Location
	now       func() time.Time
}

// NewEventService sorts listings with clock times read in loc, the zone the
// CSV export formats timestamps in.
func NewEventService(eventRepo output.EventRepository, loc *time.Location) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		loc:       loc,
		now:       time.Now,
	}
}

// CreateEvent stores the draft as typed. The creation time in epoch millis
// becomes the event ID.
func (s *EventService) CreateEvent(ctx context.Context, draft input.EventDraft) (*entities.Event, error) {
	event, err := s.eventRepo.Append(ctx, entities.Event{
		ID:          s.now().UnixMilli(),
		Title:       draft.Title,
		Date:        draft.Date,
		Location:    draft.Location,
		Description: draft.Description,
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents returns all events ordered by date.
func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.SortedByDate(events, s.loc), nil
}

func (s *EventService) GetEventByID(ctx context.Context, id int64) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}
