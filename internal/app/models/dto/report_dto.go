package dto

// SubjectWorkload is one subject taught by a teacher and the number of
// distinct classes it is taught in. Duplicate enrollment rows for the same
// (teacher, subject, class) never inflate NumberOfClasses.
type SubjectWorkload struct {
	SubjectCode     string `json:"subjectCode" example:"MATH"`
	SubjectName     string `json:"subjectName" example:"Mathematics"`
	NumberOfClasses int    `json:"numberOfClasses" example:"3"`
}

// WorkloadReport maps a teacher's display name to the subjects they teach.
// Teachers with no enrollments do not appear.
type WorkloadReport map[string][]SubjectWorkload
