package catalog

import (
	"context"
	"fmt"
	"strings"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/pkg/utils"
)

// Resolver finds a single product by free-text name with an exact
// substring pass and a normalized fuzzy fallback.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveByName returns the first product whose name contains the query
// (case-insensitive), or, failing that, the first in-stock product whose
// normalized name contains the normalized query. Returns
// ErrProductSoldOut when the direct hit has no stock and
// ErrProductNotFound when nothing matches.
func (r *Resolver) ResolveByName(ctx context.Context, query string) (*entity.Product, error) {
	product, err := r.store.FindProductByNameSubstring(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search product by name: %w", err)
	}
	if product != nil {
		if product.Quantity <= 0 {
			return nil, ErrProductSoldOut
		}
		return product, nil
	}

	normalized := utils.Normalize(query)
	if normalized == "" {
		return nil, ErrProductNotFound
	}

	// Fallback scans the catalog in ascending id order; the first
	// in-stock normalized match wins.
	products, err := r.store.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products for fallback scan: %w", err)
	}
	for _, p := range products {
		if p.Quantity <= 0 {
			continue
		}
		if strings.Contains(utils.Normalize(p.Name), normalized) {
			return p, nil
		}
	}

	return nil, ErrProductNotFound
}
