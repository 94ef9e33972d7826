package controllers

import (
	"net/http"

	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alertService services.AlertServiceInterface
}

func NewAlertController(alertService services.AlertServiceInterface) *AlertController {
	return &AlertController{alertService: alertService}
}

// Trigger godoc
// @Summary Trigger an emergency alert
// @Description Logs the alert and notifies the family contact by SMS when one is set
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.MsgResponse
// @Security BearerAuth
// @Router /alerts/trigger [post]
func (a *AlertController) Trigger(c *gin.Context) {
	result, err := a.alertService.TriggerAlert(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !result.Sent {
		utils.RespondMsg(c, http.StatusOK, "Alert logged, but no contact number is set up.")
		return
	}

	utils.RespondMsg(c, http.StatusOK, "Emergency alert successfully triggered and notification sent!")
}

// History godoc
// @Summary List the account's emergency alerts
// @Tags Alerts
// @Produce json
// @Success 200 {array} db_models.Alert
// @Security BearerAuth
// @Router /alerts [get]
func (a *AlertController) History(c *gin.Context) {
	alerts, err := a.alertService.AlertHistory(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// SendLove godoc
// @Summary Send an affectionate SMS to the family contact
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.MsgResponse
// @Failure 400 {object} utils.MsgResponse
// @Security BearerAuth
// @Router /alerts/send-love [post]
func (a *AlertController) SendLove(c *gin.Context) {
	if err := a.alertService.SendLove(c.Request.Context(), middleware.AccountID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMsg(c, http.StatusOK, "Love sent!")
}
