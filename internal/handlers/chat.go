// internal/handlers/chat.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

type chatRequest struct {
	Message string `json:"message"`
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, reply)
}
