// internal/repository/fire/demo_test.go
package fire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// DemoStoreTestSuite exercises the Store contract against the in-memory
// driver. Each test gets a freshly seeded dataset.
type DemoStoreTestSuite struct {
	suite.Suite
	store *Demo
	ctx   context.Context
}

func (s *DemoStoreTestSuite) SetupTest() {
	s.store = NewDemo()
	s.ctx = context.Background()
}

func TestDemoStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DemoStoreTestSuite))
}

func (s *DemoStoreTestSuite) page(n, limit int) repository.Pagination {
	return repository.Pagination{Page: n, Limit: limit}
}

func (s *DemoStoreTestSuite) TestSeedDataNewestFirst() {
	products, info, err := s.store.ListProducts(s.ctx, nil, s.page(1, 20))
	s.NoError(err)
	s.Len(products, 4)
	s.Equal(int64(4), info.TotalItems)
	s.Equal(1, info.TotalPages)
	s.False(info.HasNextPage)
	// creation-descending: the last seeded product comes first
	s.Equal("Berinag Tea", products[0].Name)
	s.Equal("Munsiyari Rajma", products[3].Name)
}

func (s *DemoStoreTestSuite) TestListProductsPaginationWindow() {
	first, info, err := s.store.ListProducts(s.ctx, nil, s.page(1, 3))
	s.NoError(err)
	s.Len(first, 3)
	s.Equal(2, info.TotalPages)
	s.True(info.HasNextPage)
	s.False(info.HasPrevPage)

	second, info, err := s.store.ListProducts(s.ctx, nil, s.page(2, 3))
	s.NoError(err)
	s.Len(second, 1)
	s.False(info.HasNextPage)
	s.True(info.HasPrevPage)

	// a page past the end is empty but keeps the totals
	third, info, err := s.store.ListProducts(s.ctx, nil, s.page(3, 3))
	s.NoError(err)
	s.Empty(third)
	s.Equal(int64(4), info.TotalItems)
}

func (s *DemoStoreTestSuite) TestListProductsInvalidPagination() {
	_, _, err := s.store.ListProducts(s.ctx, nil, s.page(0, 20))
	s.ErrorIs(err, repository.ErrValidation)
}

func (s *DemoStoreTestSuite) TestListProductsFilter() {
	food, _, err := s.store.ListProducts(s.ctx, repository.Filter{"category": "food"}, s.page(1, 20))
	s.NoError(err)
	s.Len(food, 2)
	for _, p := range food {
		s.Equal("food", p.Category)
	}

	certified, _, err := s.store.ListProducts(s.ctx, repository.Filter{"giCertified": true}, s.page(1, 20))
	s.NoError(err)
	s.Len(certified, 2)
}

func (s *DemoStoreTestSuite) TestListProductsUnknownFilterField() {
	_, _, err := s.store.ListProducts(s.ctx, repository.Filter{"price": 100}, s.page(1, 20))
	s.ErrorIs(err, repository.ErrValidation)
}

func (s *DemoStoreTestSuite) TestProductCreateGetRoundTrip() {
	product := &models.Product{
		Name:        "Bhotiya Dan Carpet",
		Category:    "handicraft",
		Region:      "Chamoli",
		Description: "Hand-knotted woolen carpet woven by Bhotiya families.",
		// caller-supplied aggregates must be discarded
		Rating:       5,
		ReviewsCount: 10,
	}
	s.NoError(s.store.CreateProduct(s.ctx, product))
	s.NotEmpty(product.ID)
	s.Zero(product.Rating)
	s.Zero(product.ReviewsCount)

	got, err := s.store.GetProduct(s.ctx, product.ID)
	s.NoError(err)
	s.Equal("Bhotiya Dan Carpet", got.Name)
	s.Equal("Chamoli", got.Region)
	s.Empty(got.Reviews)
}

func (s *DemoStoreTestSuite) TestGetProductNotFound() {
	_, err := s.store.GetProduct(s.ctx, "no-such-id")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestUpdateProductMerges() {
	products, _, _ := s.store.ListProducts(s.ctx, nil, s.page(1, 1))
	id := products[0].ID

	updated, err := s.store.UpdateProduct(s.ctx, id, repository.Patch{"available": false})
	s.NoError(err)
	s.False(updated.Available)
	// everything not named in the patch is preserved
	s.Equal(products[0].Name, updated.Name)
	s.Equal(products[0].Description, updated.Description)

	_, err = s.store.UpdateProduct(s.ctx, "no-such-id", repository.Patch{"available": false})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestUpdateProductCannotTouchAggregates() {
	products, _, _ := s.store.ListProducts(s.ctx, nil, s.page(1, 1))
	id := products[0].ID

	_, err := s.store.UpdateProduct(s.ctx, id, repository.Patch{"rating": 5, "reviewsCount": 99})
	s.ErrorIs(err, repository.ErrValidation)
}

func (s *DemoStoreTestSuite) TestDeleteProduct() {
	products, _, _ := s.store.ListProducts(s.ctx, nil, s.page(1, 1))
	id := products[0].ID

	s.NoError(s.store.DeleteProduct(s.ctx, id))
	_, err := s.store.GetProduct(s.ctx, id)
	s.ErrorIs(err, repository.ErrNotFound)
	s.ErrorIs(s.store.DeleteProduct(s.ctx, id), repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestAddReviewRecomputesAggregates() {
	products, _, _ := s.store.ListProducts(s.ctx, nil, s.page(1, 1))
	id := products[0].ID

	after, err := s.store.AddProductReview(s.ctx, id, repository.ReviewInput{
		Author: "Asha", Rating: 5, Comment: "Excellent",
	})
	s.NoError(err)
	s.Equal(5.0, after.Rating)
	s.Equal(1, after.ReviewsCount)

	after, err = s.store.AddProductReview(s.ctx, id, repository.ReviewInput{
		Author: "Ravi", Rating: 3,
	})
	s.NoError(err)
	s.Equal(4.0, after.Rating)
	s.Equal(2, after.ReviewsCount)

	reviews, err := s.store.ListProductReviews(s.ctx, id)
	s.NoError(err)
	s.Len(reviews, 2)
	// newest first
	s.Equal("Ravi", reviews[0].Author)
	s.Equal("Asha", reviews[1].Author)
}

func (s *DemoStoreTestSuite) TestAddReviewRatingRounding() {
	products, _, _ := s.store.ListProducts(s.ctx, nil, s.page(1, 1))
	id := products[0].ID

	for _, rating := range []int{5, 5, 4} {
		_, err := s.store.AddProductReview(s.ctx, id, repository.ReviewInput{Author: "r", Rating: rating})
		s.NoError(err)
	}
	got, err := s.store.GetProduct(s.ctx, id)
	s.NoError(err)
	// mean of 5,5,4 is 4.666..., rounded to two decimals
	s.Equal(4.67, got.Rating)
}

func (s *DemoStoreTestSuite) TestAddReviewUnknownProduct() {
	_, err := s.store.AddProductReview(s.ctx, "no-such-id", repository.ReviewInput{Author: "x", Rating: 4})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestArtisanRoundTrip() {
	artisans, info, err := s.store.ListArtisans(s.ctx, nil, s.page(1, 20))
	s.NoError(err)
	s.Len(artisans, 2)
	s.Equal(int64(2), info.TotalItems)

	filtered, _, err := s.store.ListArtisans(s.ctx, repository.Filter{"district": "Almora"}, s.page(1, 20))
	s.NoError(err)
	s.Len(filtered, 1)
	s.Equal("Kamla Devi", filtered[0].Name)

	updated, err := s.store.UpdateArtisan(s.ctx, filtered[0].ID, repository.Patch{"experienceYears": 23})
	s.NoError(err)
	s.Equal(23, updated.ExperienceYears)

	s.NoError(s.store.DeleteArtisan(s.ctx, filtered[0].ID))
	_, err = s.store.GetArtisan(s.ctx, filtered[0].ID)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestInquiryLifecycle() {
	inquiry := &models.Inquiry{
		Name:    "Meera",
		Email:   "meera@example.org",
		Subject: "Workshop dates",
		Message: "When is the next Aipan workshop?",
	}
	s.NoError(s.store.CreateInquiry(s.ctx, inquiry))
	s.Equal(models.InquiryStatusNew, inquiry.Status)

	updated, err := s.store.UpdateInquiry(s.ctx, inquiry.ID, repository.Patch{"status": "read"})
	s.NoError(err)
	s.Equal(models.InquiryStatusRead, updated.Status)

	read, _, err := s.store.ListInquiries(s.ctx, repository.Filter{"status": "read"}, s.page(1, 20))
	s.NoError(err)
	s.Len(read, 1)
}

func (s *DemoStoreTestSuite) TestNewsletterSubscribeIsKeyedByEmail() {
	first, err := s.store.SubscribeNewsletter(s.ctx, "Hello@Example.org")
	s.NoError(err)
	s.True(first.Active)
	s.Equal("hello@example.org", first.Email)

	// second subscribe with different casing is a no-op on the same record
	again, err := s.store.SubscribeNewsletter(s.ctx, "  hello@example.ORG ")
	s.NoError(err)
	s.Equal(first.ID, again.ID)
	s.Equal(first.SubscribedAt.Unix(), again.SubscribedAt.Unix())
}

func (s *DemoStoreTestSuite) TestNewsletterUnsubscribeAndReactivate() {
	sub, err := s.store.SubscribeNewsletter(s.ctx, "hill@example.org")
	s.NoError(err)

	gone, err := s.store.UnsubscribeNewsletter(s.ctx, "hill@example.org")
	s.NoError(err)
	s.False(gone.Active)
	s.NotNil(gone.UnsubscribedAt)

	// unsubscribing twice stays settled
	gone, err = s.store.UnsubscribeNewsletter(s.ctx, "hill@example.org")
	s.NoError(err)
	s.False(gone.Active)

	back, err := s.store.SubscribeNewsletter(s.ctx, "hill@example.org")
	s.NoError(err)
	s.True(back.Active)
	s.Equal(sub.ID, back.ID)
	s.Nil(back.UnsubscribedAt)
	s.False(back.SubscribedAt.Before(sub.SubscribedAt))
}

func (s *DemoStoreTestSuite) TestNewsletterUnsubscribeUnknown() {
	_, err := s.store.UnsubscribeNewsletter(s.ctx, "nobody@example.org")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *DemoStoreTestSuite) TestSearchProducts() {
	result, err := s.store.Search(s.ctx, "Rajma", repository.ScopeProducts, 10)
	s.NoError(err)
	s.Len(result.Products, 1)
	s.Empty(result.Artisans)
	s.Equal("Munsiyari Rajma", result.Products[0].Name)
	s.Equal(1, result.Total)
}

func (s *DemoStoreTestSuite) TestSearchAcrossEntities() {
	// "ringaal" appears in a product and in an artisan's specialization
	result, err := s.store.Search(s.ctx, "ringaal", repository.ScopeAll, 10)
	s.NoError(err)
	s.NotEmpty(result.Products)
	s.Len(result.Artisans, 1)
	s.Equal("Prem Ram", result.Artisans[0].Name)
	s.Equal(len(result.Products)+len(result.Artisans), result.Total)
}

func (s *DemoStoreTestSuite) TestSearchNoMatches() {
	result, err := s.store.Search(s.ctx, "pashmina", repository.ScopeAll, 10)
	s.NoError(err)
	s.Empty(result.Products)
	s.Empty(result.Artisans)
	s.Zero(result.Total)
}

func TestHaystacksAreLowercase(t *testing.T) {
	p := models.Product{Name: "UPPER Case", Description: "MiXeD"}
	assert.Equal(t, productHaystack(&p), productHaystack(&p))
	assert.NotContains(t, productHaystack(&p), "UPPER")
	assert.Contains(t, productHaystack(&p), "upper case")
}
