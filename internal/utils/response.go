// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// APIResponse is the uniform envelope every route returns.
type APIResponse struct {
	Success    bool                 `json:"success"`
	Data       any                  `json:"data,omitempty"`
	Error      string               `json:"error,omitempty"`
	Pagination *repository.PageInfo `json:"pagination,omitempty"`
}

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func PaginatedResponse(c *gin.Context, data any, info repository.PageInfo) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: &info,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "authorization required"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// RepositoryErrorResponse maps the repository error taxonomy onto HTTP
// statuses. NotFound and Validation are structured failures; Unavailable
// means the active backend could not complete the call and is surfaced as
// 503 without a retry against the other driver. DuplicateEmail is normally
// resolved inside the newsletter service; if it ever reaches the envelope
// it reports a conflict rather than a server fault.
func RepositoryErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFoundResponse(c, "record")
	case errors.Is(err, repository.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrUnavailable):
		ErrorResponse(c, http.StatusServiceUnavailable, "backend unavailable")
	case errors.Is(err, repository.ErrDuplicateEmail):
		ErrorResponse(c, http.StatusConflict, "email already subscribed")
	default:
		InternalErrorResponse(c, "")
	}
}
