// internal/repository/fire/search.go
package fire

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// Firestore has no pattern operator, so search fetches up to limit raw
// records per entity type (newest first) and scans the fixed text field set
// client-side for a case-insensitive substring match.

func productHaystack(p *models.Product) string {
	parts := append([]string{p.Name, p.Description, p.Significance}, p.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}

func artisanHaystack(a *models.Artisan) string {
	parts := append([]string{a.Name, a.Bio, a.Specialization}, a.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}

func (s *Store) Search(ctx context.Context, query string, scope repository.SearchScope, limit int) (*repository.SearchResult, error) {
	needle := strings.ToLower(query)
	result := &repository.SearchResult{
		Products: []models.Product{},
		Artisans: []models.Artisan{},
	}

	if scope == repository.ScopeAll || scope == repository.ScopeProducts {
		docs, err := s.client.Collection(colProducts).
			OrderBy("createdAt", firestore.Desc).
			Limit(limit).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, wrapErr("search products", err)
		}
		for _, doc := range docs {
			var product models.Product
			if err := doc.DataTo(&product); err != nil {
				return nil, wrapErr("decode product", err)
			}
			product.ID = doc.Ref.ID
			if strings.Contains(productHaystack(&product), needle) {
				result.Products = append(result.Products, product)
			}
		}
	}

	if scope == repository.ScopeAll || scope == repository.ScopeArtisans {
		docs, err := s.client.Collection(colArtisans).
			OrderBy("createdAt", firestore.Desc).
			Limit(limit).
			Documents(ctx).
			GetAll()
		if err != nil {
			return nil, wrapErr("search artisans", err)
		}
		for _, doc := range docs {
			var artisan models.Artisan
			if err := doc.DataTo(&artisan); err != nil {
				return nil, wrapErr("decode artisan", err)
			}
			artisan.ID = doc.Ref.ID
			if strings.Contains(artisanHaystack(&artisan), needle) {
				result.Artisans = append(result.Artisans, artisan)
			}
		}
	}

	result.Total = len(result.Products) + len(result.Artisans)
	return result, nil
}
