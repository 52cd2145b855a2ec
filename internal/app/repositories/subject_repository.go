package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"schooladmin/internal/db"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// Upsert inserts a subject by code or, when the code already exists,
// overwrites the display name. Returns the subject's id either way.
func (r *SubjectRepository) Upsert(ctx context.Context, q db.Querier, code, name string) (int64, error) {
	query := `
		INSERT INTO subjects (code, name)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, code, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error upserting subject: %w", err)
	}

	return id, nil
}
