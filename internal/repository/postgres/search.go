// internal/repository/postgres/search.go
package postgres

import (
	"context"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// Fixed text field sets searched per entity type. Array columns are joined
// so ILIKE sees one haystack per row.
const (
	productSearchClause = "name ILIKE @q OR description ILIKE @q OR significance ILIKE @q OR array_to_string(keywords, ' ') ILIKE @q"
	artisanSearchClause = "name ILIKE @q OR bio ILIKE @q OR specialization ILIKE @q OR array_to_string(skills, ' ') ILIKE @q"
)

// Search issues one case-insensitive pattern query per requested entity
// type, capped at limit results each, newest first.
func (s *Store) Search(ctx context.Context, query string, scope repository.SearchScope, limit int) (*repository.SearchResult, error) {
	pattern := "%" + query + "%"
	result := &repository.SearchResult{
		Products: []models.Product{},
		Artisans: []models.Artisan{},
	}

	if scope == repository.ScopeAll || scope == repository.ScopeProducts {
		err := s.db.WithContext(ctx).
			Where(productSearchClause, map[string]any{"q": pattern}).
			Order("created_at DESC").
			Limit(limit).
			Find(&result.Products).Error
		if err != nil {
			return nil, wrapErr("search products", err)
		}
	}

	if scope == repository.ScopeAll || scope == repository.ScopeArtisans {
		err := s.db.WithContext(ctx).
			Where(artisanSearchClause, map[string]any{"q": pattern}).
			Order("created_at DESC").
			Limit(limit).
			Find(&result.Artisans).Error
		if err != nil {
			return nil, wrapErr("search artisans", err)
		}
	}

	result.Total = len(result.Products) + len(result.Artisans)
	return result, nil
}
