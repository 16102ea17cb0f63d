// Package users persists user accounts and their interest tags.
package users

import (
	"context"

	"campushub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, hash []byte) error

	// GetInterests returns the user's interest tags, possibly empty.
	GetInterests(ctx context.Context, userID string) ([]string, error)
	// SetInterests replaces the user's interest tags.
	SetInterests(ctx context.Context, userID string, tags []string) error
}
