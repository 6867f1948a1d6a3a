package mapper

import (
	"time"

	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Order{
		Id:              o.Id,
		ProductId:       o.ProductId,
		ProductName:     o.ProductName,
		Category:        o.Category,
		Color:           o.Color,
		Material:        o.Material,
		Style:           o.Style,
		Size:            o.Size,
		Price:           o.Price,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		Email:           o.Email,
		Phone:           o.Phone,
		PaymentInfo:     o.PaymentInfo,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Order{
		Id:              o.Id,
		ProductId:       o.ProductId,
		ProductName:     o.ProductName,
		Category:        o.Category,
		Color:           o.Color,
		Material:        o.Material,
		Style:           o.Style,
		Size:            o.Size,
		Price:           o.Price,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		Email:           o.Email,
		Phone:           o.Phone,
		PaymentInfo:     o.PaymentInfo,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
