package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	ClassRepository      *ClassRepository
	SubjectRepository    *SubjectRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeacherRepository:    NewTeacherRepository(db),
		StudentRepository:    NewStudentRepository(db),
		ClassRepository:      NewClassRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
