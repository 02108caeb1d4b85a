// internal/repository/postgres/products.go
package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func (s *Store) ListProducts(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Product, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}

	query, err := applyFilter(s.db.WithContext(ctx).Model(&models.Product{}), f, productFilters)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, repository.PageInfo{}, wrapErr("count products", err)
	}

	var products []models.Product
	err = query.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Order("created_at DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&products).Error
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list products", err)
	}
	return products, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr("get product", err)
	}
	return &product, nil
}

// normalizeNewProduct assigns the identity and zeroes the derived fields.
// Reviews is an empty slice, not nil, so a fresh record serializes with
// "reviews": [] on every backend.
func normalizeNewProduct(product *models.Product) {
	product.ID = uuid.NewString()
	product.Rating = 0
	product.ReviewsCount = 0
	product.Reviews = []models.Review{}
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	normalizeNewProduct(product)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return wrapErr("create product", err)
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch repository.Patch) (*models.Product, error) {
	var product models.Product
	err := s.withTransaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return wrapErr("update product", err)
		}
		if err := repository.ApplyPatch(&product, patch); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		if err := tx.Omit(clause.Associations).Save(&product).Error; err != nil {
			return wrapErr("update product", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.withTransaction(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return wrapErr("delete product", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete product: %w", repository.ErrNotFound)
		}
		if err := tx.Delete(&models.Review{}, "product_id = ?", id).Error; err != nil {
			return wrapErr("delete product reviews", err)
		}
		return nil
	})
}

// AddProductReview inserts the review row and recomputes the product's
// derived rating and review count inside one transaction, so two racing
// calls serialize at the database and both aggregates always reflect the
// full post-insert review set.
func (s *Store) AddProductReview(ctx context.Context, productID string, in repository.ReviewInput) (*models.Product, error) {
	err := s.withTransaction(ctx, func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return wrapErr("add review", err)
		}

		review := models.Review{
			ID:        uuid.NewString(),
			ProductID: productID,
			Author:    in.Author,
			Rating:    in.Rating,
			Comment:   in.Comment,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&review).Error; err != nil {
			return wrapErr("add review", err)
		}

		var agg struct {
			Avg   float64
			Count int64
		}
		err := tx.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("product_id = ?", productID).
			Scan(&agg).Error
		if err != nil {
			return wrapErr("aggregate reviews", err)
		}

		updates := map[string]any{
			"rating":        math.Round(agg.Avg*100) / 100,
			"reviews_count": agg.Count,
			"updated_at":    time.Now(),
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Updates(updates).Error; err != nil {
			return wrapErr("update product aggregates", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, productID)
}

func (s *Store) ListProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, wrapErr("list reviews", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("list reviews: %w", repository.ErrNotFound)
	}

	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, wrapErr("list reviews", err)
	}
	return reviews, nil
}
