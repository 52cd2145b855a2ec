package dto

import "schooladmin/internal/app/models"

// StudentListResponse is the paginated roster for one class. Count is the
// total size of the merged internal+external roster before pagination, not
// the size of the returned window.
type StudentListResponse struct {
	Count    int                  `json:"count" example:"42"`
	Students []models.RosterEntry `json:"students"`
}
