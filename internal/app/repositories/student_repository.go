package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"schooladmin/internal/db"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Upsert inserts a student by email or, when the email already exists,
// overwrites the display name. Returns the student's id either way.
func (r *StudentRepository) Upsert(ctx context.Context, q db.Querier, email, name string) (int64, error) {
	query := `
		INSERT INTO students (email, name)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, email, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error upserting student: %w", err)
	}

	return id, nil
}
