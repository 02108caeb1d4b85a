// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/services"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// productFilterFromQuery maps the whitelisted query parameters onto a
// repository filter. Boolean params are coerced so the firestore driver
// compares against stored booleans, not their string form. Unknown filter
// keys are rejected by the driver.
func productFilterFromQuery(c *gin.Context) repository.Filter {
	f := repository.Filter{}
	for _, key := range []string{"category", "region", "artisanId"} {
		if v := c.Query(key); v != "" {
			f[key] = v
		}
	}
	for _, key := range []string{"available", "giCertified"} {
		if v := c.Query(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				f[key] = b
			} else {
				f[key] = v
			}
		}
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}

	products, info, err := h.productService.List(c.Request.Context(), productFilterFromQuery(c), pagination)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.PaginatedResponse(c, products, info)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /products (admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, product)
}

// PUT /products/:id (admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var patch repository.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /products/:id/reviews
func (h *ProductHandler) AddReview(c *gin.Context) {
	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	product, err := h.productService.AddReview(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, product)
}

// GET /products/:id/reviews
func (h *ProductHandler) ListReviews(c *gin.Context) {
	reviews, err := h.productService.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RepositoryErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, reviews)
}
