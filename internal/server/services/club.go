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

// ClubService manages student clubs and their memberships. Mutations are
// restricted to the club owner or an admin.
type ClubService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewClubService(db *sql.DB, m repomanager.RepositoryManager) *ClubService {
	return &ClubService{db: db, repomanager: m}
}

// Create registers a new club owned by the calling user.
func (s *ClubService) Create(ctx context.Context, ownerID string, club *models.Club) (*models.Club, error) {
	if strings.TrimSpace(club.Name) == "" {
		return nil, fmt.Errorf("%w: club name is required", common.ErrorValidation)
	}

	club.ID = uuid.NewString()
	club.OwnerID = ownerID

	created, err := s.repomanager.Clubs(s.db).Create(ctx, club)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating club: %v", err)
	}
	return created, nil
}

// GetByID returns the club with its current member count.
func (s *ClubService) GetByID(ctx context.Context, id string) (*models.Club, error) {
	return s.repomanager.Clubs(s.db).GetByID(ctx, id)
}

// List returns all clubs with member counts.
func (s *ClubService) List(ctx context.Context) ([]models.Club, error) {
	return s.repomanager.Clubs(s.db).List(ctx)
}

// Update modifies a club's descriptive fields. Only the owner or an admin
// may update; ownership never changes here.
func (s *ClubService) Update(ctx context.Context, userID string, club *models.Club) error {
	existing, err := s.repomanager.Clubs(s.db).GetByID(ctx, club.ID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(ctx, userID, existing.OwnerID); err != nil {
		return err
	}

	existing.Name = club.Name
	existing.Description = club.Description
	existing.Category = club.Category
	existing.LogoKey = club.LogoKey

	if strings.TrimSpace(existing.Name) == "" {
		return fmt.Errorf("%w: club name is required", common.ErrorValidation)
	}
	return s.repomanager.Clubs(s.db).Update(ctx, existing)
}

// Delete removes a club. Memberships go with it via ON DELETE CASCADE.
func (s *ClubService) Delete(ctx context.Context, userID, clubID string) error {
	existing, err := s.repomanager.Clubs(s.db).GetByID(ctx, clubID)
	if err != nil {
		return err
	}
	if err := s.requireOwnerOrAdmin(ctx, userID, existing.OwnerID); err != nil {
		return err
	}
	return s.repomanager.Clubs(s.db).Delete(ctx, clubID)
}

// Join adds the user to the club. Joining twice is a no-op.
func (s *ClubService) Join(ctx context.Context, clubID, userID string) error {
	if _, err := s.repomanager.Clubs(s.db).GetByID(ctx, clubID); err != nil {
		return err
	}
	return s.repomanager.Memberships(s.db).Join(ctx, clubID, userID)
}

// Leave removes the user from the club. Leaving a club the user is not in
// is a no-op.
func (s *ClubService) Leave(ctx context.Context, clubID, userID string) error {
	return s.repomanager.Memberships(s.db).Leave(ctx, clubID, userID)
}

// IsMember reports whether the user currently belongs to the club.
func (s *ClubService) IsMember(ctx context.Context, clubID, userID string) (bool, error) {
	return s.repomanager.Memberships(s.db).IsMember(ctx, clubID, userID)
}

// ListJoined returns the clubs the user belongs to.
func (s *ClubService) ListJoined(ctx context.Context, userID string) ([]models.Club, error) {
	ids, err := s.repomanager.Memberships(s.db).ListClubIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing memberships: %v", err)
	}

	clubs := make([]models.Club, 0, len(ids))
	repo := s.repomanager.Clubs(s.db)
	for _, id := range ids {
		club, err := repo.GetByID(ctx, id)
		if err != nil {
			// membership can outlive the club row only briefly, skip
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			return nil, err
		}
		clubs = append(clubs, *club)
	}
	return clubs, nil
}

func (s *ClubService) requireOwnerOrAdmin(ctx context.Context, userID, ownerID string) error {
	if userID == ownerID {
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
