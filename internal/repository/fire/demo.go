// internal/repository/fire/demo.go
package fire

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// Demo is the degraded mode of the secondary driver: a mutex-guarded
// in-memory dataset seeded with fixed placeholder records. It implements the
// full Store contract so the process keeps serving when neither backend is
// reachable, and doubles as the fixture store in tests.
type Demo struct {
	mu          sync.RWMutex
	products    map[string]*models.Product
	artisans    map[string]*models.Artisan
	users       map[string]*models.User
	inquiries   map[string]*models.Inquiry
	subscribers map[string]*models.NewsletterSubscriber // keyed by email
}

func NewDemo() *Demo {
	d := &Demo{
		products:    make(map[string]*models.Product),
		artisans:    make(map[string]*models.Artisan),
		users:       make(map[string]*models.User),
		inquiries:   make(map[string]*models.Inquiry),
		subscribers: make(map[string]*models.NewsletterSubscriber),
	}
	seed(d)
	return d
}

func (d *Demo) Name() string { return "demo" }

func (d *Demo) Close() error { return nil }

// clone round-trips through JSON so callers never share memory with the
// stored records.
func clone[T any](v *T) *T {
	raw, _ := json.Marshal(v)
	out := new(T)
	_ = json.Unmarshal(raw, out)
	return out
}

// matches applies the equality-only filter dialect against a record's JSON
// rendering. Paths come from the same whitelists as the real driver, so both
// modes accept exactly the same filters.
func matches(record any, f repository.Filter, allowed map[string]string) (bool, error) {
	if len(f) == 0 {
		return true, nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return false, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false, err
	}

	for k, want := range f {
		path, ok := allowed[k]
		if !ok {
			return false, fmt.Errorf("%w: unknown filter field %q", repository.ErrValidation, k)
		}
		got := lookupPath(fields, path)
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return false, nil
		}
	}
	return true, nil
}

func lookupPath(fields map[string]any, path string) any {
	parts := strings.Split(path, ".")
	var cur any = fields
	for _, part := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

// pageSlice applies creation-descending order and the pagination window.
func pageSlice[T any](items []T, createdAt func(T) time.Time, p repository.Pagination) ([]T, repository.PageInfo) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
	total := int64(len(items))
	start := p.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], repository.NewPageInfo(p, total)
}

func (d *Demo) ListProducts(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Product, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.Product
	for _, product := range d.products {
		ok, err := matches(product, f, productFields)
		if err != nil {
			return nil, repository.PageInfo{}, err
		}
		if ok {
			out = append(out, *clone(product))
		}
	}
	paged, info := pageSlice(out, func(p models.Product) time.Time { return p.CreatedAt }, p)
	return paged, info, nil
}

func (d *Demo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	product, ok := d.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", repository.ErrNotFound)
	}
	return clone(product), nil
}

func (d *Demo) CreateProduct(ctx context.Context, product *models.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Rating = 0
	product.ReviewsCount = 0
	product.Reviews = []models.Review{}
	d.products[product.ID] = clone(product)
	return nil
}

func (d *Demo) UpdateProduct(ctx context.Context, id string, patch repository.Patch) (*models.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.products[id]
	if !ok {
		return nil, fmt.Errorf("update product: %w", repository.ErrNotFound)
	}
	updated := clone(current)
	if err := repository.ApplyPatch(updated, patch); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	d.products[id] = updated
	return clone(updated), nil
}

func (d *Demo) DeleteProduct(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.products[id]; !ok {
		return fmt.Errorf("delete product: %w", repository.ErrNotFound)
	}
	delete(d.products, id)
	return nil
}

func (d *Demo) AddProductReview(ctx context.Context, productID string, in repository.ReviewInput) (*models.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	product, ok := d.products[productID]
	if !ok {
		return nil, fmt.Errorf("add review: %w", repository.ErrNotFound)
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		Author:    in.Author,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	product.Reviews = append([]models.Review{review}, product.Reviews...)

	var sum int
	for _, r := range product.Reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(product.Reviews))
	product.Rating = math.Round(mean*100) / 100
	product.ReviewsCount = len(product.Reviews)
	product.UpdatedAt = review.CreatedAt
	return clone(product), nil
}

func (d *Demo) ListProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	product, err := d.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return product.Reviews, nil
}

func (d *Demo) ListArtisans(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Artisan, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.Artisan
	for _, artisan := range d.artisans {
		ok, err := matches(artisan, f, artisanFields)
		if err != nil {
			return nil, repository.PageInfo{}, err
		}
		if ok {
			out = append(out, *clone(artisan))
		}
	}
	paged, info := pageSlice(out, func(a models.Artisan) time.Time { return a.CreatedAt }, p)
	return paged, info, nil
}

func (d *Demo) GetArtisan(ctx context.Context, id string) (*models.Artisan, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	artisan, ok := d.artisans[id]
	if !ok {
		return nil, fmt.Errorf("get artisan: %w", repository.ErrNotFound)
	}
	return clone(artisan), nil
}

func (d *Demo) CreateArtisan(ctx context.Context, artisan *models.Artisan) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	artisan.ID = uuid.NewString()
	artisan.CreatedAt = now
	artisan.UpdatedAt = now
	d.artisans[artisan.ID] = clone(artisan)
	return nil
}

func (d *Demo) UpdateArtisan(ctx context.Context, id string, patch repository.Patch) (*models.Artisan, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.artisans[id]
	if !ok {
		return nil, fmt.Errorf("update artisan: %w", repository.ErrNotFound)
	}
	updated := clone(current)
	if err := repository.ApplyPatch(updated, patch); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	d.artisans[id] = updated
	return clone(updated), nil
}

func (d *Demo) DeleteArtisan(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.artisans[id]; !ok {
		return fmt.Errorf("delete artisan: %w", repository.ErrNotFound)
	}
	delete(d.artisans, id)
	return nil
}

func (d *Demo) ListUsers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.User, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.User
	for _, user := range d.users {
		ok, err := matches(user, f, userFields)
		if err != nil {
			return nil, repository.PageInfo{}, err
		}
		if ok {
			out = append(out, *clone(user))
		}
	}
	paged, info := pageSlice(out, func(u models.User) time.Time { return u.CreatedAt }, p)
	return paged, info, nil
}

func (d *Demo) GetUser(ctx context.Context, id string) (*models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", repository.ErrNotFound)
	}
	return clone(user), nil
}

func (d *Demo) CreateUser(ctx context.Context, user *models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	d.users[user.ID] = clone(user)
	return nil
}

func (d *Demo) UpdateUser(ctx context.Context, id string, patch repository.Patch) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.users[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", repository.ErrNotFound)
	}
	updated := clone(current)
	if err := repository.ApplyPatch(updated, patch); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	d.users[id] = updated
	return clone(updated), nil
}

func (d *Demo) DeleteUser(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[id]; !ok {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	delete(d.users, id)
	return nil
}

func (d *Demo) ListInquiries(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.Inquiry, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.Inquiry
	for _, inquiry := range d.inquiries {
		ok, err := matches(inquiry, f, inquiryFields)
		if err != nil {
			return nil, repository.PageInfo{}, err
		}
		if ok {
			out = append(out, *clone(inquiry))
		}
	}
	paged, info := pageSlice(out, func(i models.Inquiry) time.Time { return i.CreatedAt }, p)
	return paged, info, nil
}

func (d *Demo) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	inquiry, ok := d.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("get inquiry: %w", repository.ErrNotFound)
	}
	return clone(inquiry), nil
}

func (d *Demo) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	inquiry.ID = uuid.NewString()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}
	d.inquiries[inquiry.ID] = clone(inquiry)
	return nil
}

func (d *Demo) UpdateInquiry(ctx context.Context, id string, patch repository.Patch) (*models.Inquiry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	current, ok := d.inquiries[id]
	if !ok {
		return nil, fmt.Errorf("update inquiry: %w", repository.ErrNotFound)
	}
	updated := clone(current)
	if err := repository.ApplyPatch(updated, patch); err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	d.inquiries[id] = updated
	return clone(updated), nil
}

func (d *Demo) DeleteInquiry(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.inquiries[id]; !ok {
		return fmt.Errorf("delete inquiry: %w", repository.ErrNotFound)
	}
	delete(d.inquiries, id)
	return nil
}

func (d *Demo) SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	d.mu.Lock()
	defer d.mu.Unlock()

	if sub, ok := d.subscribers[email]; ok {
		if sub.Active {
			return clone(sub), nil
		}
		sub.Active = true
		sub.SubscribedAt = time.Now()
		sub.UnsubscribedAt = nil
		sub.UpdatedAt = sub.SubscribedAt
		return clone(sub), nil
	}

	now := time.Now()
	sub := &models.NewsletterSubscriber{
		BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		Active:       true,
		SubscribedAt: now,
	}
	d.subscribers[email] = sub
	return clone(sub), nil
}

func (d *Demo) UnsubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	d.mu.Lock()
	defer d.mu.Unlock()

	sub, ok := d.subscribers[email]
	if !ok {
		return nil, fmt.Errorf("unsubscribe: %w", repository.ErrNotFound)
	}
	if !sub.Active {
		return clone(sub), nil
	}
	now := time.Now()
	sub.Active = false
	sub.UnsubscribedAt = &now
	sub.UpdatedAt = now
	return clone(sub), nil
}

func (d *Demo) ListNewsletterSubscribers(ctx context.Context, f repository.Filter, p repository.Pagination) ([]models.NewsletterSubscriber, repository.PageInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, repository.PageInfo{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.NewsletterSubscriber
	for _, sub := range d.subscribers {
		ok, err := matches(sub, f, subscriberFields)
		if err != nil {
			return nil, repository.PageInfo{}, err
		}
		if ok {
			out = append(out, *clone(sub))
		}
	}
	paged, info := pageSlice(out, func(s models.NewsletterSubscriber) time.Time { return s.CreatedAt }, p)
	return paged, info, nil
}

// Search scans the same fixed field sets as the firestore path, over the
// newest limit records per entity type.
func (d *Demo) Search(ctx context.Context, query string, scope repository.SearchScope, limit int) (*repository.SearchResult, error) {
	needle := strings.ToLower(query)
	result := &repository.SearchResult{
		Products: []models.Product{},
		Artisans: []models.Artisan{},
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if scope == repository.ScopeAll || scope == repository.ScopeProducts {
		var all []models.Product
		for _, p := range d.products {
			all = append(all, *clone(p))
		}
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
		if len(all) > limit {
			all = all[:limit]
		}
		for _, p := range all {
			if strings.Contains(productHaystack(&p), needle) {
				result.Products = append(result.Products, p)
			}
		}
	}

	if scope == repository.ScopeAll || scope == repository.ScopeArtisans {
		var all []models.Artisan
		for _, a := range d.artisans {
			all = append(all, *clone(a))
		}
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
		if len(all) > limit {
			all = all[:limit]
		}
		for _, a := range all {
			if strings.Contains(artisanHaystack(&a), needle) {
				result.Artisans = append(result.Artisans, a)
			}
		}
	}

	result.Total = len(result.Products) + len(result.Artisans)
	return result, nil
}
