package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub/internal/common"
	"campushub/internal/server/models"
	"campushub/internal/server/repositories/repomanager"
)

// EventService manages campus events and attendance. Mutations are
// restricted to the event creator or an admin.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

// Create registers a new event authored by the calling user. When the event
// is tied to a club, the club must exist.
func (s *EventService) Create(ctx context.Context, creatorID string, event *models.Event) (*models.Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return nil, fmt.Errorf("%w: event title is required", common.ErrorValidation)
	}
	if event.StartsAt.IsZero() {
		return nil, fmt.Errorf("%w: event start time is required", common.ErrorValidation)
	}
	if event.ClubID != nil {
		if _, err := s.repomanager.Clubs(s.db).GetByID(ctx, *event.ClubID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("%w: unknown club", common.ErrorValidation)
			}
			return nil, err
		}
	}

	event.ID = uuid.NewString()
	event.CreatedBy = creatorID

	created, err := s.repomanager.Events(s.db).Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %v", err)
	}
	return created, nil
}

// GetByID returns the event with its club name resolved, if any.
func (s *EventService) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return s.repomanager.Events(s.db).GetByID(ctx, id)
}

// ListUpcoming returns events starting now or later, soonest first.
func (s *EventService) ListUpcoming(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repomanager.Events(s.db).ListUpcoming(ctx, time.Now(), limit)
}

// Update modifies an event. Only the creator or an admin may update.
func (s *EventService) Update(ctx context.Context, userID string, event *models.Event) error {
	existing, err := s.repomanager.Events(s.db).GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if err := s.requireCreatorOrAdmin(ctx, userID, existing.CreatedBy); err != nil {
		return err
	}

	existing.Title = event.Title
	existing.Description = event.Description
	existing.StartsAt = event.StartsAt
	existing.Category = event.Category
	existing.Location = event.Location
	existing.ImageKey = event.ImageKey
	existing.ClubID = event.ClubID

	if strings.TrimSpace(existing.Title) == "" {
		return fmt.Errorf("%w: event title is required", common.ErrorValidation)
	}
	if existing.StartsAt.IsZero() {
		return fmt.Errorf("%w: event start time is required", common.ErrorValidation)
	}
	if existing.ClubID != nil {
		if _, err := s.repomanager.Clubs(s.db).GetByID(ctx, *existing.ClubID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: unknown club", common.ErrorValidation)
			}
			return err
		}
	}
	return s.repomanager.Events(s.db).Update(ctx, existing)
}

// Delete removes an event. Registrations go with it via ON DELETE CASCADE.
func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	existing, err := s.repomanager.Events(s.db).GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.requireCreatorOrAdmin(ctx, userID, existing.CreatedBy); err != nil {
		return err
	}
	return s.repomanager.Events(s.db).Delete(ctx, eventID)
}

// Register signs the user up for an event. Registering twice is a no-op.
func (s *EventService) Register(ctx context.Context, eventID, userID string) error {
	if _, err := s.repomanager.Events(s.db).GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.repomanager.Registrations(s.db).Register(ctx, eventID, userID)
}

// Unregister removes the user's registration. A no-op if not registered.
func (s *EventService) Unregister(ctx context.Context, eventID, userID string) error {
	return s.repomanager.Registrations(s.db).Unregister(ctx, eventID, userID)
}

// AttendeeCount returns the number of users registered for the event.
func (s *EventService) AttendeeCount(ctx context.Context, eventID string) (int64, error) {
	return s.repomanager.Registrations(s.db).Count(ctx, eventID)
}

func (s *EventService) requireCreatorOrAdmin(ctx context.Context, userID, creatorID string) error {
	if userID == creatorID {
		return nil
	}
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return common.ErrorForbidden
	}
	if !user.IsAdmin() {
		return common.ErrorForbidden
	}
	return nil
}
