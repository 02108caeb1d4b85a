// internal/handlers/inquiry.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

type updateInquiryStatusRequest struct {
	Status models.InquiryStatus `json:"status"`
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// POST /inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req services.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, inquiry)
}

// GET /inquiries (admin)
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}

	var f repository.Filter
	if status := c.Query("status"); status != "" {
		f = repository.Filter{"status": status}
	}

	inquiries, info, err := h.inquiryService.List(c.Request.Context(), f, pagination)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.PaginatedResponse(c, inquiries, info)
}

// PUT /inquiries/:id/status (admin)
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req updateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	inquiry, err := h.inquiryService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, inquiry)
}
