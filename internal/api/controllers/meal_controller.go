package controllers

import (
	"net/http"

	"companion/internal/models/request_models"
	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	mealService services.MealServiceInterface
}

func NewMealController(mealService services.MealServiceInterface) *MealController {
	return &MealController{mealService: mealService}
}

func (m *MealController) LogMeal(c *gin.Context) {
	var req request_models.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	meal, err := m.mealService.LogMeal(c.Request.Context(), middleware.AccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (m *MealController) MealsByDate(c *gin.Context) {
	meals, err := m.mealService.MealsByDate(c.Request.Context(), middleware.AccountID(c), c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

func (m *MealController) WeeklyMeals(c *gin.Context) {
	meals, err := m.mealService.WeeklyMeals(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}
