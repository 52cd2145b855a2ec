package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"schooladmin/internal/app/models"
	"schooladmin/internal/db"
	"schooladmin/internal/pkg/apperrors"
	"schooladmin/internal/pkg/dberrors"
)

// TxRunner runs a function inside one atomic transaction. Satisfied by
// db.PostgresDB.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// EntityUpserter resolves an entity by its natural key, creating it when
// absent and overwriting its display name when present, and returns its id.
// All four entity repositories satisfy this with (key, name) being
// (email, name) for teachers and students, (code, name) for classes and
// subjects.
type EntityUpserter interface {
	Upsert(ctx context.Context, q db.Querier, key, name string) (int64, error)
}

// EnrollmentWriter creates and deletes enrollment edges by their four-tuple.
type EnrollmentWriter interface {
	CreateIfAbsent(ctx context.Context, q db.Querier, e *models.Enrollment) error
	DeleteByTuple(ctx context.Context, q db.Querier, e *models.Enrollment) error
}

// ImportService reconciles an uploaded record batch into entity rows and
// enrollment edges inside one atomic unit of work.
type ImportService struct {
	tx          TxRunner
	teachers    EntityUpserter
	students    EntityUpserter
	classes     EntityUpserter
	subjects    EntityUpserter
	enrollments EnrollmentWriter
	logger      zerolog.Logger
}

// NewImportService creates a new import service instance
func NewImportService(
	tx TxRunner,
	teachers EntityUpserter,
	students EntityUpserter,
	classes EntityUpserter,
	subjects EntityUpserter,
	enrollments EnrollmentWriter,
	logger zerolog.Logger,
) *ImportService {
	return &ImportService{
		tx:          tx,
		teachers:    teachers,
		students:    students,
		classes:     classes,
		subjects:    subjects,
		enrollments: enrollments,
		logger:      logger,
	}
}

// deleteRequested reports whether a row is flagged for deletion. Only the
// exact literals "1" and "true" count; "TRUE", "yes" and everything else
// (including empty) mean upsert. A looser parse would silently turn delete
// requests into upserts for batches produced against the stricter contract,
// so the literal match is load-bearing.
func deleteRequested(toDelete string) bool {
	return toDelete == "1" || toDelete == "true"
}

// ImportBatch applies a record batch to the store. The whole batch is one
// transaction: either every row is applied or none is observable. An empty
// batch is rejected before the transaction opens, which keeps "nothing to
// do" distinguishable from "applied with zero effect".
func (s *ImportService) ImportBatch(ctx context.Context, rows []models.ImportRow) error {
	if len(rows) == 0 {
		return apperrors.ErrEmptyBatch
	}

	normalized := CanonicalizeRows(rows)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, q db.Querier) error {
		return s.reconcile(ctx, q, normalized)
	})
	if err != nil {
		// Two batches importing the same natural keys concurrently can
		// both pass the ON CONFLICT arbiter's initial check; the loser
		// aborts with a unique violation and the caller may retry.
		if dberrors.IsUniqueViolation(err) {
			s.logger.Warn().Err(err).Int("rows", len(rows)).Msg("Import batch lost a write race on unique keys")
		} else {
			s.logger.Error().Err(err).Int("rows", len(rows)).Msg("Import batch failed, no rows applied")
		}
		return fmt.Errorf("%w: batch of %d rows rolled back: %v", apperrors.ErrReconciliationFailed, len(rows), err)
	}

	s.logger.Info().Int("rows", len(rows)).Msg("Import batch applied")
	return nil
}

// reconcile runs the two-pass algorithm against an open transaction.
func (s *ImportService) reconcile(ctx context.Context, q db.Querier, rows []models.ImportRow) error {
	// Pass 1: resolve all four entities per row. Each natural key is
	// resolved once and its id recorded in a batch-local lookup table, so
	// every row sharing the key maps to the same id even if the store were
	// to answer differently on a re-query. Names are already canonical, so
	// skipping re-resolution loses no writes.
	teacherIDs := make(map[string]int64)
	studentIDs := make(map[string]int64)
	classIDs := make(map[string]int64)
	subjectIDs := make(map[string]int64)

	for _, row := range rows {
		if _, ok := teacherIDs[row.TeacherEmail]; !ok {
			id, err := s.teachers.Upsert(ctx, q, row.TeacherEmail, row.TeacherName)
			if err != nil {
				return fmt.Errorf("resolving teacher %q: %w", row.TeacherEmail, err)
			}
			teacherIDs[row.TeacherEmail] = id
		}

		if _, ok := studentIDs[row.StudentEmail]; !ok {
			id, err := s.students.Upsert(ctx, q, row.StudentEmail, row.StudentName)
			if err != nil {
				return fmt.Errorf("resolving student %q: %w", row.StudentEmail, err)
			}
			studentIDs[row.StudentEmail] = id
		}

		if _, ok := classIDs[row.ClassCode]; !ok {
			id, err := s.classes.Upsert(ctx, q, row.ClassCode, row.ClassName)
			if err != nil {
				return fmt.Errorf("resolving class %q: %w", row.ClassCode, err)
			}
			classIDs[row.ClassCode] = id
		}

		if _, ok := subjectIDs[row.SubjectCode]; !ok {
			id, err := s.subjects.Upsert(ctx, q, row.SubjectCode, row.SubjectName)
			if err != nil {
				return fmt.Errorf("resolving subject %q: %w", row.SubjectCode, err)
			}
			subjectIDs[row.SubjectCode] = id
		}
	}

	// Pass 2: resolve the enrollment edge per row from the lookup tables.
	// A missing id here means pass 1 did not cover the row; failing the
	// whole batch is the invariant, not skipping the row.
	for i, row := range rows {
		teacherID, okT := teacherIDs[row.TeacherEmail]
		studentID, okS := studentIDs[row.StudentEmail]
		classID, okC := classIDs[row.ClassCode]
		subjectID, okJ := subjectIDs[row.SubjectCode]
		if !okT || !okS || !okC || !okJ {
			return fmt.Errorf("row %d: failed to resolve entity ids", i)
		}

		edge := &models.Enrollment{
			TeacherID: teacherID,
			SubjectID: subjectID,
			StudentID: studentID,
			ClassID:   classID,
		}

		if deleteRequested(row.ToDelete) {
			if err := s.enrollments.DeleteByTuple(ctx, q, edge); err != nil {
				return fmt.Errorf("row %d: deleting enrollment: %w", i, err)
			}
			continue
		}

		if err := s.enrollments.CreateIfAbsent(ctx, q, edge); err != nil {
			return fmt.Errorf("row %d: creating enrollment: %w", i, err)
		}
	}

	return nil
}
