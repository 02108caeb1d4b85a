// internal/repository/postgres/filter_test.go
package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

func TestApplyFilterRejectsUnknownField(t *testing.T) {
	for _, allowed := range []map[string]string{productFilters, artisanFilters, inquiryFilters} {
		_, err := applyFilter(&gorm.DB{}, repository.Filter{"color": "red"}, allowed)
		assert.ErrorIs(t, err, repository.ErrValidation)
	}
}

func TestFilterWhitelistsUseJSONNames(t *testing.T) {
	// the keys callers pass are JSON field names, not column names
	assert.Contains(t, productFilters, "giCertified")
	assert.Contains(t, productFilters, "artisanId")
	assert.NotContains(t, productFilters, "gi_certified")
	assert.Contains(t, artisanFilters, "specialization")
	assert.Contains(t, subscriberFilters, "active")
}

func TestWrapErrTaxonomy(t *testing.T) {
	err := wrapErr("get product", gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = wrapErr("list products", errors.New("driver: bad connection"))
	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestIsUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	assert.True(t, isUniqueViolation(fmt.Errorf("create subscriber: %w", pqErr)))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
