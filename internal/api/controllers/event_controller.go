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

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

func (e *EventController) AddEvent(c *gin.Context) {
	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.AddEvent(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Event not found")
		return
	}

	if err := e.eventService.DeleteEvent(c.Request.Context(), middleware.AccountID(c), eventID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMsg(c, http.StatusOK, "Event removed")
}
