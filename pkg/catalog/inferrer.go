package catalog

import (
	"context"
	"fmt"
	"strings"

	"commerce-chatbot-be/pkg/utils"
)

// inferThreshold is the minimum similarity ratio between a query and a
// product name before its category is considered a plausible guess.
const inferThreshold = 0.30

// Inferrer guesses the most likely catalog category for text that
// matched no product, by similarity against every product name.
type Inferrer struct {
	store Store
}

func NewInferrer(store Store) *Inferrer {
	return &Inferrer{store: store}
}

// InferCategory returns the category of the product whose name is most
// similar to the query, or "" when the best ratio stays below the
// threshold.
func (i *Inferrer) InferCategory(ctx context.Context, query string) (string, error) {
	products, err := i.store.ListAllProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("list products for category inference: %w", err)
	}

	lowered := strings.ToLower(query)
	bestRatio := 0.0
	bestCategory := ""
	for _, p := range products {
		ratio := utils.Ratio(lowered, strings.ToLower(p.Name))
		if ratio > bestRatio {
			bestRatio = ratio
			bestCategory = p.Category
		}
	}

	if bestRatio < inferThreshold {
		return "", nil
	}
	return bestCategory, nil
}
