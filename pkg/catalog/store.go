package catalog

import (
	"context"
	"errors"

	"commerce-chatbot-be/internal/entity"
)

// Sentinel errors surfaced by catalog lookups. Callers branch with
// errors.Is; anything else is a storage failure.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductSoldOut  = errors.New("product sold out")
)

// Attribute names accepted by ListAttributeValues.
const (
	AttributeColor = "color"
	AttributeSize  = "size"
	AttributeStyle = "style"
)

// Store is the read-side storage collaborator for catalog components.
// Implementations must return multi-product results in ascending id
// order so fallback scans stay deterministic, and (nil, nil) from the
// single-product finders when nothing matches.
type Store interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListAttributeValues(ctx context.Context, category, attribute string) ([]string, error)
	FindProductByNameSubstring(ctx context.Context, text string) (*entity.Product, error)
	ListAllProducts(ctx context.Context) ([]*entity.Product, error)
	FindProductByAttributes(ctx context.Context, category, color, size, style string) (*entity.Product, error)
	ListProductsByCategoryAndStyle(ctx context.Context, category, style string) ([]*entity.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error)
}
