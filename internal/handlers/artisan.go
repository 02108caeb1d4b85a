// internal/handlers/artisan.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type ArtisanHandler struct {
	artisanService *services.ArtisanService
}

func NewArtisanHandler(artisanService *services.ArtisanService) *ArtisanHandler {
	return &ArtisanHandler{artisanService: artisanService}
}

func artisanFilterFromQuery(c *gin.Context) repository.Filter {
	f := repository.Filter{}
	for _, key := range []string{"specialization", "village", "district", "region"} {
		if v := c.Query(key); v != "" {
			f[key] = v
		}
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

// GET /artisans
func (h *ArtisanHandler) ListArtisans(c *gin.Context) {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}

	artisans, info, err := h.artisanService.List(c.Request.Context(), artisanFilterFromQuery(c), pagination)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.PaginatedResponse(c, artisans, info)
}

// GET /artisans/:id
func (h *ArtisanHandler) GetArtisan(c *gin.Context) {
	artisan, err := h.artisanService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, artisan)
}

// POST /artisans (admin)
func (h *ArtisanHandler) CreateArtisan(c *gin.Context) {
	var req services.CreateArtisanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artisan, err := h.artisanService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, artisan)
}

// PUT /artisans/:id (admin)
func (h *ArtisanHandler) UpdateArtisan(c *gin.Context) {
	var patch repository.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artisan, err := h.artisanService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, artisan)
}

// DELETE /artisans/:id (admin)
func (h *ArtisanHandler) DeleteArtisan(c *gin.Context) {
	if err := h.artisanService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}
