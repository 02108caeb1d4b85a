// internal/repository/postgres/filter.go
package postgres

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
)

// Per-entity whitelists of filterable fields, mapping the JSON field name to
// the SQL left-hand expression. Unknown keys are a validation error, never
// passed through to the database.
var (
	productFilters = map[string]string{
		"name":        "name",
		"category":    "category",
		"region":      "region",
		"available":   "available",
		"giCertified": "gi_certified",
		"artisanId":   "artisan->>'id'",
	}
	artisanFilters = map[string]string{
		"name":           "name",
		"village":        "village",
		"district":       "district",
		"region":         "region",
		"specialization": "specialization",
	}
	userFilters = map[string]string{
		"name":  "name",
		"email": "email",
	}
	inquiryFilters = map[string]string{
		"status": "status",
		"email":  "email",
	}
	subscriberFilters = map[string]string{
		"active": "active",
		"email":  "email",
	}
)

// applyFilter translates a Filter into equality predicates. Keys are applied
// in sorted order so generated SQL is deterministic.
func applyFilter(db *gorm.DB, f repository.Filter, allowed map[string]string) (*gorm.DB, error) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lhs, ok := allowed[k]
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter field %q", repository.ErrValidation, k)
		}
		db = db.Where(lhs+" = ?", f[k])
	}
	return db, nil
}
