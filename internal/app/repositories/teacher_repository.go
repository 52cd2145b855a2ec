package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"schooladmin/internal/db"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Upsert inserts a teacher by email or, when the email already exists,
// overwrites the display name. Returns the teacher's id either way. Runs on
// the Querier so it can participate in the import transaction.
func (r *TeacherRepository) Upsert(ctx context.Context, q db.Querier, email, name string) (int64, error) {
	query := `
		INSERT INTO teachers (email, name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, email, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error upserting teacher: %w", err)
	}

	return id, nil
}
