package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"campushub/internal/common"
	"campushub/internal/dbx"
	"campushub/internal/server/models"
)

// eventColumns is the shared SELECT list. The club name is resolved with a
// LEFT JOIN so it comes back as an optional single value.
const eventColumns = `e.id, e.club_id, e.title, e.description, e.starts_at, e.category,
		        e.location, e.image_key, e.created_by, e.created_at, c.name AS club_name`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {

	query :=
		`INSERT INTO events (id, club_id, title, description, starts_at, category, location, image_key, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.ClubID, event.Title, event.Description, event.StartsAt,
		event.Category, event.Location, event.ImageKey, event.CreatedBy).
		Scan(&event.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return event, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query :=
		`SELECT ` + eventColumns + `
		 FROM events e
		 LEFT JOIN clubs c ON c.id = e.club_id
		 WHERE e.id = $1
		 `

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&event.ID, &event.ClubID, &event.Title, &event.Description, &event.StartsAt,
			&event.Category, &event.Location, &event.ImageKey, &event.CreatedBy,
			&event.CreatedAt, &event.ClubName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return event, nil
}

func (r *PostgresRepository) Update(ctx context.Context, event *models.Event) error {
	query :=
		`UPDATE events SET title = $2, description = $3, starts_at = $4, category = $5, location = $6, image_key = $7, club_id = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.StartsAt, event.Category,
		event.Location, event.ImageKey, event.ClubID)
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
	query := `DELETE FROM events WHERE id = $1`

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

func (r *PostgresRepository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]models.Event, error) {
	query :=
		`SELECT ` + eventColumns + `
		 FROM events e
		 LEFT JOIN clubs c ON c.id = e.club_id
		 WHERE e.starts_at >= $1
		 ORDER BY e.starts_at
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *PostgresRepository) ListUpcomingByCategories(ctx context.Context, from time.Time, categories []string, limit int) ([]models.Event, error) {
	if len(categories) == 0 {
		return nil, common.ErrorValidation
	}

	// Placeholders are built per tag; $1 is the date and the last one the limit.
	placeholders := make([]string, len(categories))
	args := make([]any, 0, len(categories)+2)
	args = append(args, from)
	for i, cat := range categories {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, cat)
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		`SELECT `+eventColumns+`
		 FROM events e
		 LEFT JOIN clubs c ON c.id = e.club_id
		 WHERE e.starts_at >= $1 AND e.category IN (%s)
		 ORDER BY e.starts_at
		 LIMIT $%d
		 `, strings.Join(placeholders, ", "), len(categories)+2)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// SearchByText matches title OR description with ILIKE for case-insensitive
// substring search.
func (r *PostgresRepository) SearchByText(ctx context.Context, query string, limit int) ([]models.Event, error) {
	q :=
		`SELECT ` + eventColumns + `
		 FROM events e
		 LEFT JOIN clubs c ON c.id = e.club_id
		 WHERE e.title ILIKE '%' || $1 || '%' OR e.description ILIKE '%' || $1 || '%'
		 ORDER BY e.starts_at
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var result []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.ClubID, &e.Title, &e.Description, &e.StartsAt,
			&e.Category, &e.Location, &e.ImageKey, &e.CreatedBy, &e.CreatedAt, &e.ClubName); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}
	return result, nil
}
