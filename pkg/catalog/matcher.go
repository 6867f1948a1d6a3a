package catalog

import (
	"context"
	"fmt"
	"strings"

	"commerce-chatbot-be/internal/entity"
)

// Matcher resolves a product from the full (category, color, size,
// style) tuple, with a scored nearest-match fallback.
type Matcher struct {
	store Store
}

func NewMatcher(store Store) *Matcher {
	return &Matcher{store: store}
}

// ResolveByAttributes first tries an exact case-insensitive match on all
// four attributes. If none exists, in-stock candidates sharing category
// and style are scored one point per mismatched color or size and the
// lowest score wins, ties going to the earliest candidate in storage
// order. The fallback is a greedy nearest match, not a guarantee that
// the exact combination exists.
func (m *Matcher) ResolveByAttributes(ctx context.Context, category, color, size, style string) (*entity.Product, error) {
	product, err := m.store.FindProductByAttributes(ctx, category, color, size, style)
	if err != nil {
		return nil, fmt.Errorf("search product by attributes: %w", err)
	}
	if product != nil {
		if product.Quantity <= 0 {
			return nil, ErrProductSoldOut
		}
		return product, nil
	}

	candidates, err := m.store.ListProductsByCategoryAndStyle(ctx, category, style)
	if err != nil {
		return nil, fmt.Errorf("list fallback candidates: %w", err)
	}

	var best *entity.Product
	bestScore := 0
	for _, c := range candidates {
		if c.Quantity <= 0 {
			continue
		}
		score := attributeScore(c, color, size)
		if best == nil || score < bestScore {
			best = c
			bestScore = score
		}
	}
	if best == nil {
		return nil, ErrProductNotFound
	}
	return best, nil
}

// attributeScore counts mismatches: +1 for color, +1 for size.
func attributeScore(p *entity.Product, color, size string) int {
	score := 0
	if !strings.EqualFold(p.Color, color) {
		score++
	}
	if !strings.EqualFold(p.Size, size) {
		score++
	}
	return score
}
