package announcements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campushub/internal/common"
	"campushub/internal/dbx"
	"campushub/internal/server/models"
)

const announcementColumns = `a.id, a.title, a.content, a.club_id, a.created_by, a.created_at, c.name AS club_name`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Announcement) (*models.Announcement, error) {

	query :=
		`INSERT INTO announcements (id, title, content, club_id, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Title, a.Content, a.ClubID, a.CreatedBy).
		Scan(&a.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	query :=
		`SELECT ` + announcementColumns + `
		 FROM announcements a
		 LEFT JOIN clubs c ON c.id = a.club_id
		 WHERE a.id = $1
		 `

	a := &models.Announcement{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Content, &a.ClubID, &a.CreatedBy, &a.CreatedAt, &a.ClubName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.Announcement) error {
	query := `UPDATE announcements SET title = $2, content = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, a.ID, a.Title, a.Content)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM announcements WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]models.Announcement, error) {
	query :=
		`SELECT ` + announcementColumns + `
		 FROM announcements a
		 LEFT JOIN clubs c ON c.id = a.club_id
		 ORDER BY a.created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

// SearchByText matches title OR content with ILIKE for case-insensitive
// substring search, newest first.
func (r *PostgresRepository) SearchByText(ctx context.Context, query string, limit int) ([]models.Announcement, error) {
	q :=
		`SELECT ` + announcementColumns + `
		 FROM announcements a
		 LEFT JOIN clubs c ON c.id = a.club_id
		 WHERE a.title ILIKE '%' || $1 || '%' OR a.content ILIKE '%' || $1 || '%'
		 ORDER BY a.created_at DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

func scanAnnouncements(rows *sql.Rows) ([]models.Announcement, error) {
	var result []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.ClubID, &a.CreatedBy,
			&a.CreatedAt, &a.ClubName); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}
	return result, nil
}
