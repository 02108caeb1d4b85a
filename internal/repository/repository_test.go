// internal/repository/repository_test.go
package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
)

func TestPaginationValidate(t *testing.T) {
	assert.NoError(t, Pagination{Page: 1, Limit: 1}.Validate())
	assert.NoError(t, Pagination{Page: 7, Limit: 100}.Validate())
	assert.ErrorIs(t, Pagination{Page: 0, Limit: 20}.Validate(), ErrValidation)
	assert.ErrorIs(t, Pagination{Page: 1, Limit: 0}.Validate(), ErrValidation)
	assert.ErrorIs(t, Pagination{Page: -3, Limit: -1}.Validate(), ErrValidation)
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, Pagination{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 45, Pagination{Page: 10, Limit: 5}.Offset())
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		p          Pagination
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty result", Pagination{Page: 1, Limit: 20}, 0, 0, false, false},
		{"single partial page", Pagination{Page: 1, Limit: 20}, 7, 1, false, false},
		{"exact page boundary", Pagination{Page: 1, Limit: 10}, 20, 2, true, false},
		{"middle page", Pagination{Page: 2, Limit: 10}, 35, 4, true, true},
		{"last page", Pagination{Page: 4, Limit: 10}, 35, 4, false, true},
		{"page past end", Pagination{Page: 9, Limit: 10}, 35, 4, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.p, tt.total)
			assert.Equal(t, tt.p.Page, info.CurrentPage)
			assert.Equal(t, tt.totalPages, info.TotalPages)
			assert.Equal(t, tt.total, info.TotalItems)
			assert.Equal(t, tt.p.Limit, info.ItemsPerPage)
			assert.Equal(t, tt.hasNext, info.HasNextPage)
			assert.Equal(t, tt.hasPrev, info.HasPrevPage)
		})
	}
}

func TestApplyPatchMergesNamedFieldsOnly(t *testing.T) {
	product := models.Product{
		Name:        "Berinag Tea",
		Category:    "food",
		Region:      "Berinag",
		Description: "Orthodox black tea.",
		Available:   true,
	}

	err := ApplyPatch(&product, Patch{"available": false, "shelfLife": "18 months"})
	assert.NoError(t, err)
	assert.False(t, product.Available)
	assert.Equal(t, "18 months", product.ShelfLife)
	// untouched fields survive the merge
	assert.Equal(t, "Berinag Tea", product.Name)
	assert.Equal(t, "food", product.Category)
	assert.Equal(t, "Orthodox black tea.", product.Description)
}

func TestApplyPatchStripsProtectedFields(t *testing.T) {
	product := models.Product{
		BaseModel:    models.BaseModel{ID: "fixed-id"},
		Name:         "Munsiyari Rajma",
		Rating:       4.5,
		ReviewsCount: 2,
	}

	err := ApplyPatch(&product, Patch{
		"id":           "attacker-id",
		"rating":       5.0,
		"reviewsCount": 99,
		"name":         "Renamed",
	})
	assert.NoError(t, err)
	assert.Equal(t, "fixed-id", product.ID)
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, 2, product.ReviewsCount)
	assert.Equal(t, "Renamed", product.Name)
}

func TestApplyPatchLeavesCallerMapIntact(t *testing.T) {
	product := models.Product{Name: "Berinag Tea"}
	patch := Patch{"id": "attacker-id", "rating": 5.0, "name": "Renamed"}

	assert.NoError(t, ApplyPatch(&product, patch))
	// stripping protected keys must not reach through to the caller's map
	assert.Equal(t, Patch{"id": "attacker-id", "rating": 5.0, "name": "Renamed"}, patch)
}

func TestApplyPatchRejectsEmptyOrAllProtected(t *testing.T) {
	var product models.Product
	assert.ErrorIs(t, ApplyPatch(&product, Patch{}), ErrValidation)
	assert.ErrorIs(t, ApplyPatch(&product, Patch{"rating": 5}), ErrValidation)
}

func TestApplyPatchRejectsTypeMismatch(t *testing.T) {
	product := models.Product{Name: "Aipan Wall Hanging"}
	err := ApplyPatch(&product, Patch{"available": "definitely"})
	assert.ErrorIs(t, err, ErrValidation)
}
