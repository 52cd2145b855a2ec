package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"schooladmin/internal/app/models"
	"schooladmin/internal/db"
	"schooladmin/internal/pkg/apperrors"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// Upsert inserts a class by code or, when the code already exists,
// overwrites the display name. Returns the class's id either way.
func (r *ClassRepository) Upsert(ctx context.Context, q db.Querier, code, name string) (int64, error) {
	query := `
		INSERT INTO classes (code, name)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := q.QueryRow(ctx, query, code, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error upserting class: %w", err)
	}

	return id, nil
}

// GetByCode retrieves a class by its natural key.
func (r *ClassRepository) GetByCode(ctx context.Context, code string) (*models.Class, error) {
	query := `
		SELECT id, code, name
		FROM classes
		WHERE code = $1
	`

	var class models.Class
	err := r.db.QueryRow(ctx, query, code).Scan(
		&class.ID,
		&class.Code,
		&class.Name,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewClassNotFoundError(code)
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	return &class, nil
}

// UpdateName updates a class's display name, matched by code.
func (r *ClassRepository) UpdateName(ctx context.Context, code, name string) error {
	query := `
		UPDATE classes
		SET name = $1
		WHERE code = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, name, code)
	if err != nil {
		return fmt.Errorf("error updating class name: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewClassNotFoundError(code)
	}

	return nil
}
