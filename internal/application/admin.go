package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"eventify/internal/domain/entities"
	"eventify/internal/ports/input"
	"eventify/internal/ports/output"
	"eventify/pkg/datetime"
)

var (
	_ input.AdminUseCase  = (*AdminService)(nil)
	_ input.ExportUseCase = (*AdminService)(nil)
)

// ExportFilename is the name offered for the CSV download.
const ExportFilename = "eventify-registrations.csv"

const csvHeader = "Event,Name,Email,Timestamp\n"

type AdminService struct {
	eventRepo        output.EventRepository
	registrationRepo output.RegistrationRepository
	loc              *time.Location
}

// NewAdminService builds the admin use cases. loc is the zone CSV timestamps
// are rendered in.
func NewAdminService(eventRepo output.EventRepository, registrationRepo output.RegistrationRepository, loc *time.Location) *AdminService {
	return &AdminService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		loc:              loc,
	}
}

// Summaries lists every event in insertion order with its registrations.
func (s *AdminService) Summaries(ctx context.Context) ([]entities.EventSummary, error) {
	events, err := s.eventRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.EventSummary, 0, len(events))
	for _, ev := range events {
		_, regs, err := s.registrationRepo.CountAndList(ctx, ev.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.EventSummary{Event: ev, Registrations: regs})
	}
	return out, nil
}

// ExportCSV writes one row per (event, registration) pair. Every field is
// wrapped in double quotes as is; quotes inside values are not doubled.
// Nothing is written unless the whole table could be built.
func (s *AdminService) ExportCSV(ctx context.Context, w io.Writer) error {
	summaries, err := s.Summaries(ctx)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(csvHeader)
	for _, sum := range summaries {
		for _, r := range sum.Registrations {
			fmt.Fprintf(&buf, "\"%s\",\"%s\",\"%s\",\"%s\"\n",
				sum.Event.Title, r.Name, r.Email, datetime.FormatLocale(r.Timestamp, s.loc))
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}
