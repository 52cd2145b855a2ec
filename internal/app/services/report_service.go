package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/repositories"
)

// WorkloadReader lists every enrollment edge with its teacher and subject
// joined.
type WorkloadReader interface {
	ListWorkload(ctx context.Context) ([]repositories.WorkloadRow, error)
}

// ReportService derives aggregate views over the enrollment edges.
type ReportService struct {
	workload WorkloadReader
	logger   zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(workload WorkloadReader, logger zerolog.Logger) *ReportService {
	return &ReportService{
		workload: workload,
		logger:   logger,
	}
}

// subjectAgg accumulates the distinct classes seen for one
// (teacher, subject) pair.
type subjectAgg struct {
	code    string
	name    string
	classes map[int64]struct{}
}

// WorkloadReport groups enrollments by teacher then subject, counting the
// distinct classes per pair. Duplicate edges for the same class count once.
// Rows whose joined teacher or subject is missing are skipped; referential
// integrity makes that impossible in practice, but the report must not fail
// on it. Subjects keep first-appearance order within each teacher.
func (s *ReportService) WorkloadReport(ctx context.Context) (dto.WorkloadReport, error) {
	rows, err := s.workload.ListWorkload(ctx)
	if err != nil {
		return nil, fmt.Errorf("error generating workload report: %w", err)
	}

	teacherOrder := make([]string, 0)
	perTeacher := make(map[string][]*subjectAgg)
	perTeacherIndex := make(map[string]map[int64]*subjectAgg)

	for _, row := range rows {
		if row.TeacherName == nil || row.SubjectID == nil {
			continue
		}

		teacher := *row.TeacherName
		index, ok := perTeacherIndex[teacher]
		if !ok {
			index = make(map[int64]*subjectAgg)
			perTeacherIndex[teacher] = index
			teacherOrder = append(teacherOrder, teacher)
		}

		agg, ok := index[*row.SubjectID]
		if !ok {
			agg = &subjectAgg{
				classes: map[int64]struct{}{},
			}
			if row.SubjectCode != nil {
				agg.code = *row.SubjectCode
			}
			if row.SubjectName != nil {
				agg.name = *row.SubjectName
			}
			index[*row.SubjectID] = agg
			perTeacher[teacher] = append(perTeacher[teacher], agg)
		}

		agg.classes[row.ClassID] = struct{}{}
	}

	report := make(dto.WorkloadReport, len(teacherOrder))
	for _, teacher := range teacherOrder {
		subjects := make([]dto.SubjectWorkload, 0, len(perTeacher[teacher]))
		for _, agg := range perTeacher[teacher] {
			subjects = append(subjects, dto.SubjectWorkload{
				SubjectCode:     agg.code,
				SubjectName:     agg.name,
				NumberOfClasses: len(agg.classes),
			})
		}
		report[teacher] = subjects
	}

	s.logger.Info().Int("teachers", len(report)).Msg("Workload report generated")

	return report, nil
}
