package dto

// UpdateClassNameRequest is the body of the class rename endpoint. The name
// is validated again (trimmed, non-empty) by the class service.
type UpdateClassNameRequest struct {
	ClassName string `json:"className" validate:"required" example:"Algebra"`
}
