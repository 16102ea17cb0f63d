// Package repomanager bundles the per-aggregate repository factories so
// services can obtain repositories bound to either the DB or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"campushub/internal/dbx"
	"campushub/internal/server/repositories/announcements"
	"campushub/internal/server/repositories/clubs"
	"campushub/internal/server/repositories/events"
	"campushub/internal/server/repositories/memberships"
	"campushub/internal/server/repositories/refreshtokens"
	"campushub/internal/server/repositories/registrations"
	"campushub/internal/server/repositories/resettokens"
	"campushub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	Clubs(db dbx.DBTX) clubs.Repository
	Memberships(db dbx.DBTX) memberships.Repository
	Events(db dbx.DBTX) events.Repository
	Registrations(db dbx.DBTX) registrations.Repository
	Announcements(db dbx.DBTX) announcements.Repository
}
