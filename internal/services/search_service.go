// internal/services/search_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type SearchService struct {
	provider *repository.Provider
	logger   *logrus.Logger
}

func NewSearchService(provider *repository.Provider, logger *logrus.Logger) *SearchService {
	return &SearchService{provider: provider, logger: logger}
}

// Search validates the query and scope, then delegates to whichever driver
// is active. Result shape and ordering are identical on both backends.
func (s *SearchService) Search(ctx context.Context, query string, scope repository.SearchScope, limit int) (*repository.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", repository.ErrValidation)
	}
	if scope == "" {
		scope = repository.ScopeAll
	}
	switch scope {
	case repository.ScopeAll, repository.ScopeProducts, repository.ScopeArtisans:
	default:
		return nil, fmt.Errorf("%w: invalid search scope %q", repository.ErrValidation, scope)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	store, err := s.provider.Store(ctx)
	if err != nil {
		return nil, err
	}
	result, err := store.Search(ctx, query, scope, limit)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"query": query,
		"scope": scope,
		"total": result.Total,
	}).Debug("search completed")
	return result, nil
}
