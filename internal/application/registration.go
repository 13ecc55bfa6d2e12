package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventify/internal/domain"
	"eventify/internal/domain/entities"
	"eventify/internal/ports/input"
	"eventify/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	registrationRepo output.RegistrationRepository
	now              func() time.Time
}

func NewRegistrationService(registrationRepo output.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		now:              time.Now,
	}
}

// Register records name and email for eventID. The event itself is not
// looked up: a registration for an unknown ID is stored all the same.
func (s *RegistrationService) Register(ctx context.Context, eventID int64, name, email string) (*entities.Registration, error) {
	if eventID == 0 {
		return nil, domain.ErrEventNotFound
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, domain.ErrIncompleteRegistration
	}

	reg := entities.Registration{
		Name:      name,
		Email:     email,
		Timestamp: s.now().UnixMilli(),
	}
	if err := s.registrationRepo.Append(ctx, eventID, reg); err != nil {
		return nil, fmt.Errorf("register for event %d: %w", eventID, err)
	}
	return &reg, nil
}
