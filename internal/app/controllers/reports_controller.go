package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooladmin/internal/app/services"
	"schooladmin/internal/middleware"
)

// ReportsController serves aggregate reports over the enrollment data.
type ReportsController struct {
	reportService *services.ReportService
}

// NewReportsController creates a new ReportsController
func NewReportsController(reportService *services.ReportService) *ReportsController {
	return &ReportsController{
		reportService: reportService,
	}
}

// GetWorkloadReport handles the teacher workload report
// @Summary Teacher workload report
// @Description Maps each teacher to the subjects they teach and the number of distinct classes per subject
// @Tags reports
// @Produce json
// @Success 200 {object} dto.WorkloadReport
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/workload [get]
func (c *ReportsController) GetWorkloadReport(ctx *gin.Context) {
	report, err := c.reportService.WorkloadReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
