package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/repositories"
)

type fakeWorkloadReader struct {
	rows []repositories.WorkloadRow
	err  error
}

func (f *fakeWorkloadReader) ListWorkload(_ context.Context) ([]repositories.WorkloadRow, error) {
	return f.rows, f.err
}

func strPtr(s string) *string { return &s }
func idPtr(i int64) *int64    { return &i }

func workloadRow(teacher string, subjectID int64, subjectCode, subjectName string, classID int64) repositories.WorkloadRow {
	return repositories.WorkloadRow{
		TeacherName: strPtr(teacher),
		SubjectID:   idPtr(subjectID),
		SubjectCode: strPtr(subjectCode),
		SubjectName: strPtr(subjectName),
		ClassID:     classID,
	}
}

func TestWorkloadReportCountsDistinctClasses(t *testing.T) {
	reader := &fakeWorkloadReader{rows: []repositories.WorkloadRow{
		workloadRow("Mr Tan", 1, "MATH", "Mathematics", 10),
		workloadRow("Mr Tan", 1, "MATH", "Mathematics", 10),
		workloadRow("Mr Tan", 1, "MATH", "Mathematics", 11),
		workloadRow("Mr Tan", 2, "SCI", "Science", 10),
	}}
	svc := NewReportService(reader, zerolog.Nop())

	report, err := svc.WorkloadReport(context.Background())

	require.NoError(t, err)
	require.Contains(t, report, "Mr Tan")
	assert.Equal(t, []dto.SubjectWorkload{
		{SubjectCode: "MATH", SubjectName: "Mathematics", NumberOfClasses: 2},
		{SubjectCode: "SCI", SubjectName: "Science", NumberOfClasses: 1},
	}, report["Mr Tan"])
}

func TestWorkloadReportGroupsByTeacher(t *testing.T) {
	reader := &fakeWorkloadReader{rows: []repositories.WorkloadRow{
		workloadRow("Mr Tan", 1, "MATH", "Mathematics", 10),
		workloadRow("Ms Lim", 1, "MATH", "Mathematics", 10),
		workloadRow("Ms Lim", 2, "SCI", "Science", 11),
	}}
	svc := NewReportService(reader, zerolog.Nop())

	report, err := svc.WorkloadReport(context.Background())

	require.NoError(t, err)
	assert.Len(t, report, 2)
	assert.Len(t, report["Mr Tan"], 1)
	assert.Len(t, report["Ms Lim"], 2)
}

func TestWorkloadReportSkipsRowsMissingJoinedEntities(t *testing.T) {
	reader := &fakeWorkloadReader{rows: []repositories.WorkloadRow{
		{TeacherName: nil, SubjectID: idPtr(1), ClassID: 10},
		{TeacherName: strPtr("Mr Tan"), SubjectID: nil, ClassID: 10},
		workloadRow("Mr Tan", 1, "MATH", "Mathematics", 10),
	}}
	svc := NewReportService(reader, zerolog.Nop())

	report, err := svc.WorkloadReport(context.Background())

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 1, report["Mr Tan"][0].NumberOfClasses)
}

func TestWorkloadReportEmptyStore(t *testing.T) {
	svc := NewReportService(&fakeWorkloadReader{}, zerolog.Nop())

	report, err := svc.WorkloadReport(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestWorkloadReportPropagatesReadError(t *testing.T) {
	svc := NewReportService(&fakeWorkloadReader{err: errors.New("connection reset")}, zerolog.Nop())

	_, err := svc.WorkloadReport(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload report")
}
