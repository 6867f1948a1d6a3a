package implementation

import (
	"context"
	"errors"
	"fmt"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/mapper"
	"commerce-chatbot-be/internal/model"
	"commerce-chatbot-be/internal/repository/contract"
	"commerce-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

// attributeColumns whitelists columns usable with ListDistinctValues so a
// caller can never interpolate arbitrary SQL identifiers.
var attributeColumns = map[string]bool{
	"color": true,
	"size":  true,
	"style": true,
}

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var m model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("id ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	// Ascending id keeps fallback scans deterministic.
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ProductRepositoryImpl) ListDistinctValues(ctx context.Context, column string, category string) ([]string, error) {
	if !attributeColumns[column] {
		return nil, fmt.Errorf("unsupported attribute column: %s", column)
	}

	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("LOWER(category) = LOWER(?)", category).
		Distinct(column).
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *ProductRepositoryImpl) DecrementStock(ctx context.Context, id uint, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
