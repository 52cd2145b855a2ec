package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthcheckController answers liveness probes.
type HealthcheckController struct{}

// NewHealthcheckController creates a new HealthcheckController
func NewHealthcheckController() *HealthcheckController {
	return &HealthcheckController{}
}

// Healthcheck handles the liveness probe
// @Summary Healthcheck
// @Description Reports that the service is up
// @Tags healthcheck
// @Success 200 "Service is healthy"
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
