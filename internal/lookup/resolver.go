// Package lookup resolves named reference-data categories to their current
// rows, for populating selection fields in the client.
package lookup

import (
	"context"
	"fmt"

	"github.com/rideloop/vehicle-registry/internal/models"
)

// Source supplies the current rows of one reference-data table.
type Source func(ctx context.Context) ([]models.LookupItem, error)

// Resolver maps category names to their sources. Lookups are lenient: an
// unknown category resolves to an empty list rather than an error, matching
// how the client requests named tables and destructures the result.
type Resolver struct {
	sources map[string]Source
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{sources: make(map[string]Source)}
}

// Register binds a category name to a source. Registering the same name twice
// replaces the earlier source.
func (r *Resolver) Register(category string, src Source) {
	r.sources[category] = src
}

// Resolve returns the current rows for each requested category.
func (r *Resolver) Resolve(ctx context.Context, categories []string) (map[string][]models.LookupItem, error) {
	result := make(map[string][]models.LookupItem, len(categories))
	for _, category := range categories {
		src, ok := r.sources[category]
		if !ok {
			result[category] = []models.LookupItem{}
			continue
		}
		items, err := src(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve lookup %q: %w", category, err)
		}
		if items == nil {
			items = []models.LookupItem{}
		}
		result[category] = items
	}
	return result, nil
}
