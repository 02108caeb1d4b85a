// internal/handlers/search.go
package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// GET /search?q=...&type=all|products|artisans&limit=10
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	scope := repository.SearchScope(c.DefaultQuery("type", string(repository.ScopeAll)))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RepositoryErrorResponse(c, fmt.Errorf("%w: invalid limit %q", repository.ErrValidation, raw))
			return
		}
		limit = n
	}

	result, err := h.searchService.Search(c.Request.Context(), query, scope, limit)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}
