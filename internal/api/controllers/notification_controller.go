package controllers

import (
	"net/http"

	"companion/internal/models/request_models"
	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// Subscribe godoc
// @Summary Register a browser push subscription
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.SubscribeRequest true "Push subscription payload"
// @Success 201 {object} utils.MsgResponse
// @Security BearerAuth
// @Router /notifications/subscribe [post]
func (n *NotificationController) Subscribe(c *gin.Context) {
	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.notificationService.Subscribe(c.Request.Context(), middleware.AccountID(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMsg(c, http.StatusCreated, "Subscription saved.")
}
