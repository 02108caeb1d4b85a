// internal/handlers/newsletter.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type NewsletterHandler struct {
	newsletterService *services.NewsletterService
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func NewNewsletterHandler(newsletterService *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, sub)
}

// POST /newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	sub, err := h.newsletterService.Unsubscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, sub)
}

// GET /newsletter/subscribers (admin)
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}

	subs, info, err := h.newsletterService.List(c.Request.Context(), nil, pagination)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.PaginatedResponse(c, subs, info)
}
