package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/services"
	"schooladmin/internal/middleware"
	"schooladmin/internal/pkg/helpers"
)

// StudentController serves the hybrid class roster listing.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents handles the paginated roster listing for a class
// @Summary List students of a class
// @Description Returns one page of the class roster, merging internally-owned students with the external roster source
// @Tags students
// @Produce json
// @Param classCode path string true "Class code"
// @Param offset query int false "Window offset, >= 0" default(0)
// @Param limit query int false "Window size, >= 1" default(10)
// @Success 200 {object} dto.StudentListResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed class code or pagination parameters"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /class/{classCode}/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	classCode := strings.TrimSpace(ctx.Param("classCode"))
	if classCode == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Class code is required"))
		return
	}

	offset, limit, err := helpers.ParseOffsetLimit(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.studentService.ListStudents(ctx, classCode, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
