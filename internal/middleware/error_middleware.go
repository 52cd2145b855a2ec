package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/pkg/apperrors"
	"schooladmin/internal/pkg/logger"
)

// HandleAPIError maps a service error to the HTTP response. Validation and
// not-found failures carry their own caller-facing message; everything else
// is reported as a generic internal error and logged for operators, so no
// internal detail leaks to the caller.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyBatch):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "CSV file is empty"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, apperrors.ErrClassNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed with internal error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}
