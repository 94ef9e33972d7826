package controllers

import (
	"net/http"

	"companion/internal/models/request_models"
	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{healthService: healthService}
}

func (h *HealthController) AddMetric(c *gin.Context) {
	var req request_models.HealthMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	metric, err := h.healthService.AddMetric(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

func (h *HealthController) ListMetrics(c *gin.Context) {
	metrics, err := h.healthService.ListMetrics(c.Request.Context(), middleware.AccountID(c), c.Param("metricType"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
