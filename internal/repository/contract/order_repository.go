package contract

import (
	"context"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
