package controllers

import (
	"net/http"

	"companion/internal/services"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EntertainmentController struct {
	entertainmentService services.EntertainmentServiceInterface
}

func NewEntertainmentController(entertainmentService services.EntertainmentServiceInterface) *EntertainmentController {
	return &EntertainmentController{entertainmentService: entertainmentService}
}

func (e *EntertainmentController) Search(c *gin.Context) {
	videos, err := e.entertainmentService.SearchVideos(c.Request.Context(), c.Query("query"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}
