// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetPaginationParams reads page/limit from the query string. Absent values
// get defaults; explicitly malformed values are a validation error rather
// than being silently corrected.
func GetPaginationParams(c *gin.Context) (repository.Pagination, error) {
	p := repository.Pagination{Page: 1, Limit: defaultPageLimit}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, fmt.Errorf("%w: invalid page %q", repository.ErrValidation, raw)
		}
		p.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return p, fmt.Errorf("%w: invalid limit %q", repository.ErrValidation, raw)
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
		p.Limit = limit
	}

	return p, nil
}
