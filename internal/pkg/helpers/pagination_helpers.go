package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/pkg/apperrors"
)

const (
	// DefaultOffset is used when the offset query parameter is absent.
	DefaultOffset = 0
	// DefaultLimit is used when the limit query parameter is absent.
	DefaultLimit = 10
)

// ParseOffsetLimit extracts and validates the offset/limit pagination
// parameters from the request. Absent parameters fall back to the defaults;
// present-but-malformed or out-of-range values are validation errors, since
// silently correcting them would hide caller bugs.
func ParseOffsetLimit(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", strconv.Itoa(DefaultOffset))
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, apperrors.NewValidationError(fmt.Sprintf("offset must be an integer, got %q", offsetStr))
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		return 0, 0, apperrors.NewValidationError(fmt.Sprintf("limit must be an integer, got %q", limitStr))
	}

	if offset < 0 || limit < 1 {
		return 0, 0, apperrors.NewValidationError("Offset must be >= 0 and limit must be >= 1")
	}

	return offset, limit, nil
}
