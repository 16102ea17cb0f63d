// Package registrations persists the event_registrations join table.
package registrations

import "context"

type Repository interface {
	// Register is idempotent: registering twice is not an error.
	Register(ctx context.Context, eventID, userID string) error
	Unregister(ctx context.Context, eventID, userID string) error
	IsRegistered(ctx context.Context, eventID, userID string) (bool, error)
	Count(ctx context.Context, eventID string) (int64, error)
}
