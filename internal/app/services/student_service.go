package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"schooladmin/internal/app/models"
	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/pkg/apperrors"
)

// externalFetchLimit is the window requested from the external roster
// source. Pagination has to happen after the merge, so the external set is
// fetched whole; this limit is "effectively all" for any realistic class.
const externalFetchLimit = 10000

// ClassReader resolves a class by its natural key.
type ClassReader interface {
	GetByCode(ctx context.Context, code string) (*models.Class, error)
}

// RosterReader lists the internal students of a class via its enrollments.
type RosterReader interface {
	ListStudentsByClass(ctx context.Context, classID int64) ([]models.RosterEntry, error)
}

// ExternalRoster fetches the externally-owned student set for a class.
// Implementations absorb their own failures and return an empty set.
type ExternalRoster interface {
	FetchStudents(ctx context.Context, classCode string, offset, limit int) []models.RosterEntry
}

// StudentService assembles the hybrid class roster: internal
// enrollment-derived students merged with externally-sourced ones,
// deterministically ordered and paginated.
type StudentService struct {
	classes  ClassReader
	roster   RosterReader
	external ExternalRoster
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(classes ClassReader, roster RosterReader, external ExternalRoster, logger zerolog.Logger) *StudentService {
	return &StudentService{
		classes:  classes,
		roster:   roster,
		external: external,
		logger:   logger,
	}
}

// ListStudents returns one page of the merged roster for a class, plus the
// total pre-pagination size of the merge. Internal and external sets are
// fetched concurrently; only the internal query can fail the request, since
// the external gateway degrades to empty on its own.
func (s *StudentService) ListStudents(ctx context.Context, classCode string, offset, limit int) (*dto.StudentListResponse, error) {
	if offset < 0 || limit < 1 {
		return nil, apperrors.NewValidationError("Offset must be >= 0 and limit must be >= 1")
	}

	class, err := s.classes.GetByCode(ctx, classCode)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("classCode", classCode).
		Int64("classId", class.ID).
		Int("offset", offset).
		Int("limit", limit).
		Msg("Fetching students for class")

	var internal, external []models.RosterEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		internal, err = s.roster.ListStudentsByClass(gctx, class.ID)
		if err != nil {
			return fmt.Errorf("listing internal students: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		external = s.external.FetchStudents(gctx, classCode, 0, externalFetchLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := mergeAndSortRoster(internal, external)

	page := sliceWindow(merged, offset, limit)

	s.logger.Info().
		Int("returned", len(page)).
		Int("total", len(merged)).
		Msg("Returning students")

	return &dto.StudentListResponse{
		Count:    len(merged),
		Students: page,
	}, nil
}

// mergeAndSortRoster concatenates the two source sets and orders them by
// name then email, using a collation that ignores case and compares digit
// runs numerically ("Student 2" sorts before "Student 10"). Internal and
// external id spaces are assumed disjoint; no cross-source deduplication is
// attempted.
func mergeAndSortRoster(internal, external []models.RosterEntry) []models.RosterEntry {
	merged := make([]models.RosterEntry, 0, len(internal)+len(external))
	merged = append(merged, internal...)
	merged = append(merged, external...)

	// Collators buffer internally and are not safe for concurrent use, so
	// one is built per call rather than shared.
	c := collate.New(language.Und, collate.Loose, collate.Numeric)

	sort.SliceStable(merged, func(i, j int) bool {
		if cmp := c.CompareString(merged[i].Name, merged[j].Name); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(merged[i].Email, merged[j].Email) < 0
	})

	return merged
}

// sliceWindow slices [offset, offset+limit) out of the merged roster. An
// offset beyond the end yields an empty page, never an error.
func sliceWindow(entries []models.RosterEntry, offset, limit int) []models.RosterEntry {
	if offset >= len(entries) {
		return []models.RosterEntry{}
	}

	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}

	return entries[offset:end]
}
