package models

// ImportRow is one record of an uploaded import batch. It is transient, never
// persisted: it carries enough information to resolve all four entities plus
// one enrollment edge. ToDelete keeps the raw string from the file; only the
// exact literals "1" and "true" mark the row as a deletion.
type ImportRow struct {
	TeacherEmail string
	TeacherName  string
	StudentEmail string
	StudentName  string
	ClassCode    string
	ClassName    string
	SubjectCode  string
	SubjectName  string
	ToDelete     string
}
