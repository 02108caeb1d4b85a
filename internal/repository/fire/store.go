// internal/repository/fire/store.go

// Package fire implements the secondary store driver against Cloud
// Firestore. The query dialect is equality-only: no regex, no native
// full-text, search is a client-side substring scan. When credentials are
// absent or the client cannot come up the driver degrades to a seeded
// in-memory demo mode instead of failing the process.
package fire

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

const (
	colProducts    = "products"
	colArtisans    = "artisans"
	colUsers       = "users"
	colInquiries   = "inquiries"
	colSubscribers = "newsletter"
)

// Firestore field paths allowed as equality filters, keyed by the JSON field
// name used in the facade contract.
var (
	productFields = map[string]string{
		"name":        "name",
		"category":    "category",
		"region":      "region",
		"available":   "available",
		"giCertified": "giCertified",
		"artisanId":   "artisan.id",
	}
	artisanFields = map[string]string{
		"name":           "name",
		"village":        "village",
		"district":       "district",
		"region":         "region",
		"specialization": "specialization",
	}
	userFields = map[string]string{
		"name":  "name",
		"email": "email",
	}
	inquiryFields = map[string]string{
		"status": "status",
		"email":  "email",
	}
	subscriberFields = map[string]string{
		"active": "active",
		"email":  "email",
	}
)

type Config struct {
	ProjectID       string
	CredentialsFile string
}

// Store is the firestore-backed driver.
type Store struct {
	client *firestore.Client
}

// Open brings up the secondary driver. It never fails: without a project ID
// (or when the client cannot be created) it returns the demo store serving
// fixed placeholder data, logging the degradation.
func Open(ctx context.Context, cfg Config, logger *logrus.Logger) repository.Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if cfg.ProjectID == "" {
		logger.Warn("firestore credentials not configured, serving demo data")
		return NewDemo()
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		logger.WithError(err).Warn("firestore client failed, serving demo data")
		return NewDemo()
	}
	return &Store{client: client}
}

func (s *Store) Name() string { return "firestore" }

func (s *Store) Close() error { return s.client.Close() }

func wrapErr(op string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %v", op, repository.ErrUnavailable, err)
}

func applyQuery(q firestore.Query, f repository.Filter, allowed map[string]string) (firestore.Query, error) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path, ok := allowed[k]
		if !ok {
			return q, fmt.Errorf("%w: unknown filter field %q", repository.ErrValidation, k)
		}
		q = q.Where(path, "==", f[k])
	}
	return q, nil
}

func (s *Store) count(ctx context.Context, q firestore.Query) (int64, error) {
	res, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["total"].(*firestorepb.Value)
	if !ok {
		return 0, errors.New("unexpected aggregation result")
	}
	return v.GetIntegerValue(), nil
}

func (s *Store) page(ctx context.Context, q firestore.Query, p repository.Pagination) ([]*firestore.DocumentSnapshot, int64, error) {
	total, err := s.count(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	docs, err := q.
		OrderBy("createdAt", firestore.Desc).
		Offset(p.Offset()).
		Limit(p.Limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}
