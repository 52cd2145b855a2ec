package models

// Subject represents a taught subject, identified externally by its unique code.
type Subject struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Code string `json:"code" db:"code" example:"MATH"`
	Name string `json:"name" db:"name" example:"Mathematics"`
}
