// internal/repository/postgres/products_test.go
package postgres

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
)

func TestNormalizeNewProductShape(t *testing.T) {
	product := models.Product{Name: "Berinag Tea", Rating: 4.2, ReviewsCount: 7}
	normalizeNewProduct(&product)

	assert.NotEmpty(t, product.ID)
	assert.Zero(t, product.Rating)
	assert.Zero(t, product.ReviewsCount)

	// a fresh record serializes its reviews as [], never null, matching
	// the other drivers
	raw, err := json.Marshal(product)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"reviews":[]`)
}
