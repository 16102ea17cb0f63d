package memberships

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

func (r *PostgresRepository) Join(ctx context.Context, clubID, userID string) error {
	query :=
		`INSERT INTO club_memberships (club_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (club_id, user_id) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query, clubID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Leave(ctx context.Context, clubID, userID string) error {
	query := `DELETE FROM club_memberships WHERE club_id = $1 AND user_id = $2`

	_, err := r.db.ExecContext(ctx, query, clubID, userID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) IsMember(ctx context.Context, clubID, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM club_memberships WHERE club_id = $1 AND user_id = $2`

	var count int64
	err := r.db.QueryRowContext(ctx, query, clubID, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %v", err)
	}

	return count > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context, clubID string) (int64, error) {
	query := `SELECT COUNT(*) FROM club_memberships WHERE club_id = $1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, clubID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return count, nil
}

func (r *PostgresRepository) ListClubIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT club_id FROM club_memberships WHERE user_id = $1 ORDER BY joined_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}

	return ids, nil
}
