package services

import "schooladmin/internal/app/models"

// CanonicalizeRows resolves a single display name per natural key across a
// batch and rewrites every row to use it. A batch may carry repeated edits
// to the same entity (a name correction appended later in the file); the
// value from the row closest to the end of the batch wins for that key and
// is applied uniformly, so callers never have to re-order or pre-deduplicate
// rows.
//
// Two passes over the indexable slice: a backward scan records the first
// name seen per key (which is the last occurrence in file order), then a
// forward pass rewrites the rows in their original order. Pure function:
// the input slice is not mutated, and the output has the same length and
// order.
func CanonicalizeRows(rows []models.ImportRow) []models.ImportRow {
	teacherNames := make(map[string]string)
	studentNames := make(map[string]string)
	classNames := make(map[string]string)
	subjectNames := make(map[string]string)

	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]

		if _, ok := teacherNames[row.TeacherEmail]; !ok {
			teacherNames[row.TeacherEmail] = row.TeacherName
		}
		if _, ok := studentNames[row.StudentEmail]; !ok {
			studentNames[row.StudentEmail] = row.StudentName
		}
		if _, ok := classNames[row.ClassCode]; !ok {
			classNames[row.ClassCode] = row.ClassName
		}
		if _, ok := subjectNames[row.SubjectCode]; !ok {
			subjectNames[row.SubjectCode] = row.SubjectName
		}
	}

	canonical := make([]models.ImportRow, len(rows))
	for i, row := range rows {
		row.TeacherName = teacherNames[row.TeacherEmail]
		row.StudentName = studentNames[row.StudentEmail]
		row.ClassName = classNames[row.ClassCode]
		row.SubjectName = subjectNames[row.SubjectCode]
		canonical[i] = row
	}

	return canonical
}
