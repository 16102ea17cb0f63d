// Package session persists the CLI user's tokens in a local SQLite file so
// a login survives process restarts.
package session

import "context"

// Repository stores the current session's token pair.
type Repository interface {
	// SaveTokens replaces the stored token pair.
	SaveTokens(ctx context.Context, accessToken, refreshToken string) error
	// Tokens returns the stored pair; both are "" when logged out.
	Tokens(ctx context.Context) (accessToken, refreshToken string, err error)
	// Clear logs the user out locally.
	Clear(ctx context.Context) error
}
