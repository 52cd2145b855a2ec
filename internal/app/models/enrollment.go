package models

// Enrollment is the four-way relation edge between a teacher, a subject, a
// student and a class. The (teacher, subject, student, class) tuple is unique
// and is the edge's effective identity; the surrogate id only exists because
// the table needs a primary key.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"`
	TeacherID int64 `json:"teacherId" db:"teacher_id"`
	SubjectID int64 `json:"subjectId" db:"subject_id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	ClassID   int64 `json:"classId" db:"class_id"`
}
