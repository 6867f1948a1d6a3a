package service

import (
	"context"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/repository/specification"
	"commerce-chatbot-be/internal/repository/unitofwork"
	"commerce-chatbot-be/pkg/catalog"
)

// catalogStore adapts the product repository to the read-side Store
// interface the catalog components consume. Each call uses a fresh
// non-transactional unit of work; catalog reads never join an order
// transaction.
type catalogStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogStore(uowFactory unitofwork.RepositoryFactory) catalog.Store {
	return &catalogStore{uowFactory: uowFactory}
}

func (s *catalogStore) ListCategories(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().ListCategories(ctx)
}

func (s *catalogStore) ListAttributeValues(ctx context.Context, category, attribute string) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().ListDistinctValues(ctx, attribute, category)
}

func (s *catalogStore) FindProductByNameSubstring(ctx context.Context, text string) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindOne(ctx, specification.NameContains{Text: text})
}

func (s *catalogStore) ListAllProducts(ctx context.Context) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindAll(ctx)
}

func (s *catalogStore) FindProductByAttributes(ctx context.Context, category, color, size, style string) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindOne(ctx, specification.ByAttributes{
		Category: category,
		Color:    color,
		Size:     size,
		Style:    style,
	})
}

func (s *catalogStore) ListProductsByCategoryAndStyle(ctx context.Context, category, style string) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindAll(ctx,
		specification.ByCategory{Category: category},
		specification.ByStyle{Style: style},
	)
}

func (s *catalogStore) ListProductsByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindAll(ctx, specification.ByCategory{Category: category})
}
