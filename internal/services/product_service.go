// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/utils"
)

type ProductService struct {
	provider *repository.Provider
	logger   *logrus.Logger
}

type CreateProductRequest struct {
	Name          string                `json:"name" validate:"required,min=2,max=255"`
	Category      string                `json:"category" validate:"required"`
	Region        string                `json:"region" validate:"required"`
	Description   string                `json:"description" validate:"required,min=10"`
	Significance  string                `json:"significance,omitempty"`
	Images        []string              `json:"images,omitempty"`
	Artisan       models.ArtisanSummary `json:"artisan"`
	Nutrition     *models.NutritionInfo `json:"nutrition,omitempty"`
	HarvestSeason string                `json:"harvestSeason,omitempty"`
	ShelfLife     string                `json:"shelfLife,omitempty"`
	Material      string                `json:"material,omitempty"`
	Dimensions    string                `json:"dimensions,omitempty"`
	Keywords      []string              `json:"keywords,omitempty"`
	Available     *bool                 `json:"available,omitempty"`
	GICertified   bool                  `json:"giCertified"`
}

type AddReviewRequest struct {
	Author  string `json:"author" validate:"required,min=2,max=255"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func NewProductService(provider *repository.Provider, logger *logrus.Logger) *ProductService {
	return &ProductService{provider: provider, logger: logger}
}

func (s *ProductService) List(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Product, repository.PageInfo, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	return store.ListProducts(ctx, f, p)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.GetProduct(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.ValidationSummary(err))
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &models.Product{
		Name:          req.Name,
		Category:      req.Category,
		Region:        req.Region,
		Description:   req.Description,
		Significance:  req.Significance,
		Images:        req.Images,
		Artisan:       req.Artisan,
		Nutrition:     req.Nutrition,
		HarvestSeason: req.HarvestSeason,
		ShelfLife:     req.ShelfLife,
		Material:      req.Material,
		Dimensions:    req.Dimensions,
		Keywords:      req.Keywords,
		Available:     available,
		GICertified:   req.GICertified,
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"product_id": product.ID, "name": product.Name}).Info("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch repository.Patch) (*models.Product, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.UpdateProduct(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return err
	}
	if err := store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("product deleted")
	return nil
}

func (s *ProductService) AddReview(ctx context.Context, productID string, req *AddReviewRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrValidation, utils.ValidationSummary(err))
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	product, err := store.AddProductReview(ctx, productID, repository.ReviewInput{
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"product_id": productID,
		"rating":     req.Rating,
		"new_rating": product.Rating,
	}).Info("review added")
	return product, nil
}

func (s *ProductService) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	return store.ListProductReviews(ctx, productID)
}
