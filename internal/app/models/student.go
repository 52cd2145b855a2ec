package models

// Student defines the student model based on the 'students' table.
// Email is the natural key used to match students across import batches.
type Student struct {
	ID    int64  `json:"id" db:"id" example:"1"`
	Email string `json:"email" db:"email" example:"a.chen@school.edu"`
	Name  string `json:"name" db:"name" example:"Alice Chen"`
}
