package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin/internal/app/models"
)

func importRow(overrides func(*models.ImportRow)) models.ImportRow {
	row := models.ImportRow{
		TeacherEmail: "t1@school.edu",
		TeacherName:  "Teacher One",
		StudentEmail: "s1@school.edu",
		StudentName:  "Student One",
		ClassCode:    "C1",
		ClassName:    "Class One",
		SubjectCode:  "MATH",
		SubjectName:  "Mathematics",
	}
	if overrides != nil {
		overrides(&row)
	}
	return row
}

func TestCanonicalizeRowsLastOccurrenceWins(t *testing.T) {
	rows := []models.ImportRow{
		importRow(func(r *models.ImportRow) { r.TeacherName = "Old Name" }),
		importRow(func(r *models.ImportRow) {
			r.TeacherName = "Middle Name"
			r.StudentEmail = "s2@school.edu"
			r.StudentName = "Student Two"
		}),
		importRow(func(r *models.ImportRow) { r.TeacherName = "Corrected Name" }),
	}

	got := CanonicalizeRows(rows)

	require.Len(t, got, 3)
	for _, row := range got {
		assert.Equal(t, "Corrected Name", row.TeacherName, "every row sharing the key gets the value closest to the end")
	}
}

func TestCanonicalizeRowsAppliesPerKey(t *testing.T) {
	rows := []models.ImportRow{
		importRow(func(r *models.ImportRow) {
			r.SubjectName = "Maths"
			r.ClassName = "Old Class Name"
		}),
		importRow(func(r *models.ImportRow) {
			r.SubjectCode = "ENG"
			r.SubjectName = "English"
			r.ClassName = "New Class Name"
		}),
	}

	got := CanonicalizeRows(rows)

	// The MATH row keeps its own subject name; only the shared class code
	// is rewritten.
	assert.Equal(t, "Maths", got[0].SubjectName)
	assert.Equal(t, "English", got[1].SubjectName)
	assert.Equal(t, "New Class Name", got[0].ClassName)
	assert.Equal(t, "New Class Name", got[1].ClassName)
}

func TestCanonicalizeRowsPreservesOrderAndOtherFields(t *testing.T) {
	rows := []models.ImportRow{
		importRow(func(r *models.ImportRow) { r.ToDelete = "1" }),
		importRow(func(r *models.ImportRow) {
			r.StudentEmail = "s9@school.edu"
			r.StudentName = "Student Nine"
			r.ToDelete = "garbage"
		}),
	}

	got := CanonicalizeRows(rows)

	require.Len(t, got, len(rows))
	assert.Equal(t, "1", got[0].ToDelete)
	assert.Equal(t, "garbage", got[1].ToDelete)
	assert.Equal(t, "s1@school.edu", got[0].StudentEmail)
	assert.Equal(t, "s9@school.edu", got[1].StudentEmail)
}

func TestCanonicalizeRowsDoesNotMutateInput(t *testing.T) {
	rows := []models.ImportRow{
		importRow(func(r *models.ImportRow) { r.TeacherName = "Original" }),
		importRow(func(r *models.ImportRow) { r.TeacherName = "Replacement" }),
	}

	_ = CanonicalizeRows(rows)

	assert.Equal(t, "Original", rows[0].TeacherName)
}

func TestCanonicalizeRowsEmptyInput(t *testing.T) {
	got := CanonicalizeRows(nil)
	assert.Empty(t, got)
}
