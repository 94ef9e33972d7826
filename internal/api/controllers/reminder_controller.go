package controllers

import (
	"net/http"

	"companion/internal/models/request_models"
	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReminderController struct {
	reminderService services.ReminderServiceInterface
}

func NewReminderController(reminderService services.ReminderServiceInterface) *ReminderController {
	return &ReminderController{reminderService: reminderService}
}

func (r *ReminderController) AddReminder(c *gin.Context) {
	var req request_models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reminder, err := r.reminderService.AddReminder(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (r *ReminderController) ListReminders(c *gin.Context) {
	reminders, err := r.reminderService.ListReminders(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

func (r *ReminderController) ToggleReminder(c *gin.Context) {
	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	reminder, err := r.reminderService.ToggleReminder(c.Request.Context(), middleware.AccountID(c), reminderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (r *ReminderController) DeleteReminder(c *gin.Context) {
	reminderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	if err := r.reminderService.DeleteReminder(c.Request.Context(), middleware.AccountID(c), reminderID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMsg(c, http.StatusOK, "Reminder removed")
}
