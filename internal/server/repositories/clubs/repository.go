// Package clubs persists student clubs.
package clubs

import (
	"context"

	"campushub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, club *models.Club) (*models.Club, error)
	GetByID(ctx context.Context, id string) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id string) error

	// SearchByText matches name OR description, case-insensitive substring.
	SearchByText(ctx context.Context, query string, limit int) ([]models.Club, error)
}
