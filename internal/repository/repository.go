// internal/repository/repository.go

// Package repository defines the backend-agnostic data-access contract and
// the one-time backend selection protocol. Driver implementations live in
// the postgres and fire subpackages; application code only ever sees the
// Store interface resolved through a Provider.
package repository

import (
	"context"
	"math"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
)

// Filter maps entity field names (JSON names) to exact-match values. Pattern
// matching is not expressed here: each driver keeps its own search dialect
// local to its implementation.
type Filter map[string]any

// Pagination is validated caller input; both values are 1-based.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Validate() error {
	if p.Page < 1 || p.Limit < 1 {
		return ErrValidation
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the derived pagination block returned with every list result.
type PageInfo struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

func NewPageInfo(p Pagination, total int64) PageInfo {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return PageInfo{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		HasNextPage:  p.Page < totalPages,
		HasPrevPage:  p.Page > 1,
	}
}

// Patch carries partial-update fields keyed by JSON field name. Merge
// semantics: only the named fields change, everything else is preserved.
type Patch map[string]any

// ReviewInput is the caller-supplied part of a review; id, product and
// timestamp are assigned by the driver.
type ReviewInput struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type SearchScope string

const (
	ScopeAll      SearchScope = "all"
	ScopeProducts SearchScope = "products"
	ScopeArtisans SearchScope = "artisans"
)

// SearchResult is the normalized cross-entity search shape. Total is always
// len(Products)+len(Artisans); there is no relevance ranking beyond the
// store's creation-descending order.
type SearchResult struct {
	Products []models.Product `json:"products"`
	Artisans []models.Artisan `json:"artisans"`
	Total    int              `json:"total"`
}

// Store is the single interface the rest of the application calls. Exactly
// one implementation is active per process lifetime; see Provider. Every
// method may suspend on network I/O and honors ctx for the duration of the
// call only — abandoning a call does not stop the underlying I/O.
type Store interface {
	// Name identifies the active backend ("postgres", "firestore", "demo").
	Name() string

	ListProducts(ctx context.Context, f Filter, p Pagination) ([]models.Product, PageInfo, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id string, patch Patch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// AddProductReview inserts the review and recomputes the product's
	// rating and reviewsCount from the full post-insert review set,
	// atomically with respect to the insertion.
	AddProductReview(ctx context.Context, productID string, in ReviewInput) (*models.Product, error)
	ListProductReviews(ctx context.Context, productID string) ([]models.Review, error)

	ListArtisans(ctx context.Context, f Filter, p Pagination) ([]models.Artisan, PageInfo, error)
	GetArtisan(ctx context.Context, id string) (*models.Artisan, error)
	CreateArtisan(ctx context.Context, artisan *models.Artisan) error
	UpdateArtisan(ctx context.Context, id string, patch Patch) (*models.Artisan, error)
	DeleteArtisan(ctx context.Context, id string) error

	ListUsers(ctx context.Context, f Filter, p Pagination) ([]models.User, PageInfo, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, patch Patch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	ListInquiries(ctx context.Context, f Filter, p Pagination) ([]models.Inquiry, PageInfo, error)
	GetInquiry(ctx context.Context, id string) (*models.Inquiry, error)
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	UpdateInquiry(ctx context.Context, id string, patch Patch) (*models.Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error

	// SubscribeNewsletter is keyed by email: an already-active address is a
	// no-op returning the existing record, a previously unsubscribed one is
	// reactivated with a fresh subscribedAt.
	SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	UnsubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	ListNewsletterSubscribers(ctx context.Context, f Filter, p Pagination) ([]models.NewsletterSubscriber, PageInfo, error)

	Search(ctx context.Context, query string, scope SearchScope, limit int) (*SearchResult, error)

	Close() error
}
