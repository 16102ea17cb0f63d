// Package announcements persists campus announcements.
package announcements

import (
	"context"

	"campushub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id string) error

	// ListRecent returns announcements newest first.
	ListRecent(ctx context.Context, limit int) ([]models.Announcement, error)

	// SearchByText matches title OR content, case-insensitive substring,
	// newest first.
	SearchByText(ctx context.Context, query string, limit int) ([]models.Announcement, error)
}
