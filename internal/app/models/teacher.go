package models

// Teacher defines the teacher model based on the 'teachers' table.
// Email is the natural key used to match teachers across import batches.
type Teacher struct {
	ID    int64  `json:"id" db:"id" example:"1"`
	Email string `json:"email" db:"email" example:"t.hart@school.edu"`
	Name  string `json:"name" db:"name" example:"Teresa Hart"`
}
