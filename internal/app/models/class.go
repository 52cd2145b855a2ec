package models

// Class represents a class, identified externally by its unique code.
type Class struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Code string `json:"code" db:"code" example:"P1-C1"`
	Name string `json:"name" db:"name" example:"Primary 1 Class 1"`
}
