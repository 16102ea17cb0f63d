// Package memberships persists the club_memberships join table.
package memberships

import "context"

type Repository interface {
	// Join is idempotent: joining twice is not an error.
	Join(ctx context.Context, clubID, userID string) error
	Leave(ctx context.Context, clubID, userID string) error
	IsMember(ctx context.Context, clubID, userID string) (bool, error)
	Count(ctx context.Context, clubID string) (int64, error)
	ListClubIDs(ctx context.Context, userID string) ([]string, error)
}
