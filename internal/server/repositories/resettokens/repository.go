// Package resettokens persists single-use password reset tokens.
package resettokens

import (
	"context"
	"time"

	"campushub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.PasswordResetToken, error)
	Delete(ctx context.Context, token string) error
}
