package controllers

import (
	"net/http"

	"companion/internal/models/request_models"
	"companion/internal/models/response_models"
	"companion/internal/services"
	"companion/pkg/middleware"
	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Send a message to the AI companion
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} utils.MsgResponse
// @Security BearerAuth
// @Router /ai/chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := ch.chatService.Chat(c.Request.Context(), middleware.AccountID(c), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.ChatResponse{Reply: reply})
}

// History godoc
// @Summary Get the chat history for the logged-in account
// @Tags Chat
// @Produce json
// @Success 200 {array} db_models.Message
// @Security BearerAuth
// @Router /chat/history [get]
func (ch *ChatController) History(c *gin.Context) {
	messages, err := ch.chatService.History(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
