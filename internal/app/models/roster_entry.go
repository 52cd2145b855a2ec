package models

// RosterEntry is one student in a class roster view. Both the internal query
// path and the external gateway produce this shape; the numeric id is the
// identity used for deduplication within a source. Internal and external id
// spaces are assumed disjoint, so no cross-source reconciliation happens.
type RosterEntry struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice Chen"`
	Email string `json:"email" example:"a.chen@school.edu"`
}
