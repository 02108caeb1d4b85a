// internal/repository/patch.go
package repository

import (
	"encoding/json"
	"fmt"
)

// ApplyPatch merges patch into dst (a pointer to an entity struct) by JSON
// field name. Both drivers use it for update calls so merge semantics are
// identical regardless of backend: read, merge, write back, last-write-wins.
func ApplyPatch(dst any, patch Patch) error {
	if len(patch) == 0 {
		return fmt.Errorf("%w: empty update", ErrValidation)
	}
	// Immutable and derived fields are never patchable. Strip them from a
	// copy so the caller's map stays intact.
	clean := make(Patch, len(patch))
	for k, v := range patch {
		clean[k] = v
	}
	for _, k := range []string{"id", "createdAt", "updatedAt", "rating", "reviewsCount", "reviews"} {
		delete(clean, k)
	}
	if len(clean) == 0 {
		return fmt.Errorf("%w: no updatable fields", ErrValidation)
	}

	raw, err := json.Marshal(dst)
	if err != nil {
		return fmt.Errorf("marshal current record: %w", err)
	}
	var merged map[string]any
	if err := json.Unmarshal(raw, &merged); err != nil {
		return fmt.Errorf("decode current record: %w", err)
	}
	for k, v := range clean {
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal merged record: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
