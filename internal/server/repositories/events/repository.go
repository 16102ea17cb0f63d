// Package events persists campus events.
package events

import (
	"context"
	"time"

	"campushub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error

	// ListUpcoming returns events starting at or after from, ascending by date.
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]models.Event, error)

	// ListUpcomingByCategories is ListUpcoming restricted to the given
	// category tags. Categories must be non-empty.
	ListUpcomingByCategories(ctx context.Context, from time.Time, categories []string, limit int) ([]models.Event, error)

	// SearchByText matches title OR description, case-insensitive substring.
	SearchByText(ctx context.Context, query string, limit int) ([]models.Event, error)
}
