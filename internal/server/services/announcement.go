package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campushub/internal/common"
	"campushub/internal/server/models"
	"campushub/internal/server/repositories/repomanager"
)

// AnnouncementService manages campus announcements. Mutations are restricted
// to the author or an admin.
type AnnouncementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAnnouncementService(db *sql.DB, m repomanager.RepositoryManager) *AnnouncementService {
	return &AnnouncementService{db: db, repomanager: m}
}

// Create posts a new announcement. When tied to a club, the club must exist.
func (s *AnnouncementService) Create(ctx context.Context, authorID string, a *models.Announcement) (*models.Announcement, error) {
	if strings.TrimSpace(a.Title) == "" {
		return nil, fmt.Errorf("%w: announcement title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(a.Content) == "" {
		return nil, fmt.Errorf("%w: announcement content is required", common.ErrorValidation)
	}
	if a.ClubID != nil {
		if _, err := s.repomanager.Clubs(s.db).GetByID(ctx, *a.ClubID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, fmt.Errorf("%w: unknown club", common.ErrorValidation)
			}
			return nil, err
		}
	}

	a.ID = uuid.NewString()
	a.CreatedBy = authorID

	created, err := s.repomanager.Announcements(s.db).Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("error creating announcement: %v", err)
	}
	return created, nil
}

// GetByID returns the announcement with its club name resolved, if any.
func (s *AnnouncementService) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	return s.repomanager.Announcements(s.db).GetByID(ctx, id)
}

// ListRecent returns announcements newest first.
func (s *AnnouncementService) ListRecent(ctx context.Context, limit int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repomanager.Announcements(s.db).ListRecent(ctx, limit)
}

// Update modifies an announcement. Only the author or an admin may update.
func (s *AnnouncementService) Update(ctx context.Context, userID string, a *models.Announcement) error {
	existing, err := s.repomanager.Announcements(s.db).GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if err := s.requireAuthorOrAdmin(ctx, userID, existing.CreatedBy); err != nil {
		return err
	}

	existing.Title = a.Title
	existing.Content = a.Content

	if strings.TrimSpace(existing.Title) == "" {
		return fmt.Errorf("%w: announcement title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(existing.Content) == "" {
		return fmt.Errorf("%w: announcement content is required", common.ErrorValidation)
	}
	return s.repomanager.Announcements(s.db).Update(ctx, existing)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, userID, id string) error {
	existing, err := s.repomanager.Announcements(s.db).GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireAuthorOrAdmin(ctx, userID, existing.CreatedBy); err != nil {
		return err
	}
	return s.repomanager.Announcements(s.db).Delete(ctx, id)
}

func (s *AnnouncementService) requireAuthorOrAdmin(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
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
