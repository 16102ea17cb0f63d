package clubs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campushub/internal/common"
	"campushub/internal/dbx"
	"campushub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, club *models.Club) (*models.Club, error) {

	query :=
		`INSERT INTO clubs (id, name, description, category, logo_key, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		club.ID, club.Name, club.Description, club.Category, club.LogoKey, club.OwnerID).
		Scan(&club.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return club, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Club, error) {
	query :=
		`SELECT c.id, c.name, c.description, c.category, c.logo_key, c.owner_id, c.created_at,
		        (SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id) AS member_count
		 FROM clubs c
		 WHERE c.id = $1
		 `

	club := &models.Club{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&club.ID, &club.Name, &club.Description, &club.Category, &club.LogoKey,
			&club.OwnerID, &club.CreatedAt, &club.MemberCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return club, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Club, error) {
	query :=
		`SELECT c.id, c.name, c.description, c.category, c.logo_key, c.owner_id, c.created_at,
		        (SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id) AS member_count
		 FROM clubs c
		 ORDER BY c.name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanClubs(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, club *models.Club) error {
	query :=
		`UPDATE clubs SET name = $2, description = $3, category = $4, logo_key = $5
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		club.ID, club.Name, club.Description, club.Category, club.LogoKey)
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
	query := `DELETE FROM clubs WHERE id = $1`

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

// SearchByText matches name OR description with ILIKE for case-insensitive
// substring search.
func (r *PostgresRepository) SearchByText(ctx context.Context, query string, limit int) ([]models.Club, error) {
	q :=
		`SELECT c.id, c.name, c.description, c.category, c.logo_key, c.owner_id, c.created_at,
		        (SELECT COUNT(*) FROM club_memberships m WHERE m.club_id = c.id) AS member_count
		 FROM clubs c
		 WHERE c.name ILIKE '%' || $1 || '%' OR c.description ILIKE '%' || $1 || '%'
		 ORDER BY c.name
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	return scanClubs(rows)
}

func scanClubs(rows *sql.Rows) ([]models.Club, error) {
	var result []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.LogoKey,
			&c.OwnerID, &c.CreatedAt, &c.MemberCount); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %v", err)
	}
	return result, nil
}
