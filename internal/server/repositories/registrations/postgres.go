package registrations

import (
	"context"
	"fmt"

	"campushub/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Register(ctx context.Context, eventID, userID string) error {
	query :=
		`INSERT INTO event_registrations (event_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (event_id, user_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Unregister(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`

	_, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1 AND user_id = $2`

	var count int64
	err := r.db.QueryRowContext(ctx, query, eventID, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %v", err)
	}

	return count > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context, eventID string) (int64, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return count, nil
}
