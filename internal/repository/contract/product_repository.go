package contract

import (
	"context"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListDistinctValues(ctx context.Context, column string, category string) ([]string, error)
	// DecrementStock atomically reduces stock by the given quantity.
	// Returns false when the product is missing or stock is insufficient.
	DecrementStock(ctx context.Context, id uint, quantity int) (bool, error)
}
