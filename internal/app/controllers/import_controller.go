package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/services"
	"schooladmin/internal/middleware"
	"schooladmin/internal/pkg/fileparse"
)

// ImportController handles bulk record uploads.
type ImportController struct {
	importService *services.ImportService
	logger        zerolog.Logger
}

// NewImportController creates a new ImportController
func NewImportController(importService *services.ImportService, logger zerolog.Logger) *ImportController {
	return &ImportController{
		importService: importService,
		logger:        logger,
	}
}

// Upload handles a batch upload
// @Summary Import a record batch
// @Description Uploads a CSV or XLSX batch and reconciles it into teachers, students, classes, subjects and enrollments in one transaction
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param data formData file true "Batch file (CSV or XLSX)"
// @Success 204 "Batch applied"
// @Failure 400 {object} dto.ErrorResponse "Missing file, empty batch or malformed content"
// @Failure 500 {object} dto.ErrorResponse "Batch rolled back"
// @Router /upload [post]
func (c *ImportController) Upload(ctx *gin.Context) {
	c.logger.Info().Msg("Upload request received")

	fileHeader, err := ctx.FormFile("data")
	if err != nil {
		c.logger.Warn().Err(err).Msg("No file in request")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "No file uploaded"))
		return
	}

	c.logger.Info().
		Str("filename", fileHeader.Filename).
		Int64("size", fileHeader.Size).
		Msg("File received")

	file, err := fileHeader.Open()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to open uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error"))
		return
	}
	defer file.Close()

	rows, err := fileparse.Rows(file, fileHeader.Filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(rows) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "CSV file is empty"))
		return
	}

	if err := c.importService.ImportBatch(ctx, rows); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
