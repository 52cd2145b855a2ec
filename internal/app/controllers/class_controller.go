package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/services"
	"schooladmin/internal/middleware"
)

// ClassController handles class-related operations.
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// UpdateClassName handles a class rename
// @Summary Rename a class
// @Description Updates the display name of the class with the given code
// @Tags classes
// @Accept json
// @Produce json
// @Param classCode path string true "Class code"
// @Param request body dto.UpdateClassNameRequest true "New class name"
// @Success 204 "Class renamed"
// @Failure 400 {object} dto.ErrorResponse "Missing class code or blank name"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /class/{classCode} [put]
func (c *ClassController) UpdateClassName(ctx *gin.Context) {
	classCode := strings.TrimSpace(ctx.Param("classCode"))
	if classCode == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Class code is required"))
		return
	}

	var req dto.UpdateClassNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "className is required and must be a non-empty string"))
		return
	}

	if err := middleware.ValidateStruct(&req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.classService.UpdateClassName(ctx, classCode, req.ClassName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
