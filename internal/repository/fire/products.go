// internal/repository/fire/products.go
package fire

import (
	"context"
	"errors"
	"math"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func (s *Store) ListProducts(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Product, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	q, err := applyQuery(s.client.Collection(colProducts).Query, f, productFields)
	if err != nil {
		return nil, repository.PageInfo{}, err
	}
	docs, total, err := s.page(ctx, q, p)
	if err != nil {
		return nil, repository.PageInfo{}, wrapErr("list products", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		var product models.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, repository.PageInfo{}, wrapErr("decode product", err)
		}
		product.ID = doc.Ref.ID
		products = append(products, product)
	}
	return products, repository.NewPageInfo(p, total), nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	doc, err := s.client.Collection(colProducts).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrapErr("get product", err)
	}
	var product models.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, wrapErr("decode product", err)
	}
	product.ID = doc.Ref.ID
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Rating = 0
	product.ReviewsCount = 0
	product.Reviews = []models.Review{}

	if _, err := s.client.Collection(colProducts).Doc(product.ID).Set(ctx, product); err != nil {
		return wrapErr("create product", err)
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch repository.Patch) (*models.Product, error) {
	ref := s.client.Collection(colProducts).Doc(id)
	var product models.Product

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&product); err != nil {
			return err
		}
		product.ID = id
		if err := repository.ApplyPatch(&product, patch); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		return tx.Set(ref, &product)
	})
	if err != nil {
		if isTaxonomyErr(err) {
			return nil, err
		}
		return nil, wrapErr("update product", err)
	}
	return &product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	ref := s.client.Collection(colProducts).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		return wrapErr("delete product", err)
	}
	if _, err := ref.Delete(ctx); err != nil {
		return wrapErr("delete product", err)
	}
	return nil
}

// AddProductReview appends the review to the embedded list and recomputes
// the derived aggregates inside one firestore transaction.
func (s *Store) AddProductReview(ctx context.Context, productID string, in repository.ReviewInput) (*models.Product, error) {
	ref := s.client.Collection(colProducts).Doc(productID)
	var product models.Product

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		if err := doc.DataTo(&product); err != nil {
			return err
		}
		product.ID = productID

		review := models.Review{
			ID:        uuid.NewString(),
			ProductID: productID,
			Author:    in.Author,
			Rating:    in.Rating,
			Comment:   in.Comment,
			CreatedAt: time.Now(),
		}
		product.Reviews = append([]models.Review{review}, product.Reviews...)
		product.Rating = meanRating(product.Reviews)
		product.ReviewsCount = len(product.Reviews)
		product.UpdatedAt = review.CreatedAt
		return tx.Set(ref, &product)
	})
	if err != nil {
		return nil, wrapErr("add review", err)
	}

	for i := range product.Reviews {
		product.Reviews[i].ProductID = productID
	}
	return &product, nil
}

func (s *Store) ListProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	reviews := product.Reviews
	for i := range reviews {
		reviews[i].ProductID = productID
	}
	return reviews, nil
}

// meanRating rounds the arithmetic mean to 2 decimals.
func meanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*100) / 100
}

// isTaxonomyErr reports whether err is already mapped to the shared
// taxonomy, so transaction wrappers don't double-wrap it.
func isTaxonomyErr(err error) bool {
	for _, sentinel := range []error{repository.ErrNotFound, repository.ErrValidation, repository.ErrUnavailable, repository.ErrDuplicateEmail} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
