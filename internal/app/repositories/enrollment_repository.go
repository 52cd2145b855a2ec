package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"schooladmin/internal/app/models"
	"schooladmin/internal/db"
)

// EnrollmentRepository handles database operations for enrollment edges
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// CreateIfAbsent creates the enrollment edge unless the same
// (teacher, subject, student, class) tuple already exists. Re-creating an
// existing tuple is a no-op: the foreign keys are the edge's identity, so
// there is nothing to update.
func (r *EnrollmentRepository) CreateIfAbsent(ctx context.Context, q db.Querier, e *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (teacher_id, subject_id, student_id, class_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (teacher_id, subject_id, student_id, class_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, e.TeacherID, e.SubjectID, e.StudentID, e.ClassID); err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// DeleteByTuple removes the enrollment edge matching the four-tuple.
// Deleting an absent tuple is a no-op.
func (r *EnrollmentRepository) DeleteByTuple(ctx context.Context, q db.Querier, e *models.Enrollment) error {
	query := `
		DELETE FROM enrollments
		WHERE teacher_id = $1 AND subject_id = $2 AND student_id = $3 AND class_id = $4
	`

	if _, err := q.Exec(ctx, query, e.TeacherID, e.SubjectID, e.StudentID, e.ClassID); err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return nil
}

// ListStudentsByClass retrieves the distinct students enrolled in a class by
// following the class's enrollment edges.
func (r *EnrollmentRepository) ListStudentsByClass(ctx context.Context, classID int64) ([]models.RosterEntry, error) {
	query := `
		SELECT DISTINCT s.id, s.name, s.email
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE e.class_id = $1
	`

	rows, err := r.db.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("error listing students for class: %w", err)
	}
	defer rows.Close()

	var students []models.RosterEntry
	for rows.Next() {
		var entry models.RosterEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email); err != nil {
			return nil, err
		}
		students = append(students, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// WorkloadRow is one enrollment edge with its teacher and subject joined.
// The joins are outer joins, so the joined fields are nullable; the report
// aggregator skips rows whose teacher or subject is gone rather than fail.
type WorkloadRow struct {
	TeacherName *string
	SubjectID   *int64
	SubjectCode *string
	SubjectName *string
	ClassID     int64
}

// ListWorkload retrieves every enrollment edge joined with its teacher and
// subject, in stable edge order.
func (r *EnrollmentRepository) ListWorkload(ctx context.Context) ([]WorkloadRow, error) {
	query := `
		SELECT t.name, sub.id, sub.code, sub.name, e.class_id
		FROM enrollments e
		LEFT JOIN teachers t ON t.id = e.teacher_id
		LEFT JOIN subjects sub ON sub.id = e.subject_id
		ORDER BY e.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollment workload: %w", err)
	}
	defer rows.Close()

	var workload []WorkloadRow
	for rows.Next() {
		var row WorkloadRow
		if err := rows.Scan(&row.TeacherName, &row.SubjectID, &row.SubjectCode, &row.SubjectName, &row.ClassID); err != nil {
			return nil, err
		}
		workload = append(workload, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workload, nil
}
