package routes

import (
	"github.com/gin-gonic/gin"

	"schooladmin/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthcheckController *controllers.HealthcheckController,
	importController *controllers.ImportController,
	studentController *controllers.StudentController,
	classController *controllers.ClassController,
	reportsController *controllers.ReportsController,
) {
	api := router.Group("/api")

	api.GET("/healthcheck", healthcheckController.Healthcheck)

	api.POST("/upload", importController.Upload)

	class := api.Group("/class")
	{
		class.GET("/:classCode/students", studentController.ListStudents)
		class.PUT("/:classCode", classController.UpdateClassName)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/workload", reportsController.GetWorkloadReport)
	}
}
