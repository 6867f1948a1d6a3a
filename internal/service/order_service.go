package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce-chatbot-be/internal/dto"
	"commerce-chatbot-be/internal/entity"
	"commerce-chatbot-be/internal/pkg/logger"
	"commerce-chatbot-be/internal/repository/specification"
	"commerce-chatbot-be/internal/repository/unitofwork"
	"commerce-chatbot-be/pkg/events"
	pktNats "commerce-chatbot-be/pkg/nats"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotCancellable = errors.New("order is on delivery and cannot be cancelled")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

type IOrderService interface {
	Status(ctx context.Context, id uint) (string, error)
	Cancel(ctx context.Context, id uint) error
	PlaceOrder(ctx context.Context, draft *dto.OrderDraft) (uint, error)
}

type orderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	natsPub          *pktNats.Publisher
	log              logger.ILogger
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		natsPub:          natsPub,
		log:              log,
	}
}

func (s *orderService) Status(ctx context.Context, id uint) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return "", fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		return "", ErrOrderNotFound
	}
	return order.Status, nil
}

func (s *orderService) Cancel(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if strings.EqualFold(order.Status, entity.OrderStatusOnDelivery) {
		return ErrOrderNotCancellable
	}

	if err := uow.OrderRepository().UpdateStatus(ctx, id, entity.OrderStatusCancelled); err != nil {
		return fmt.Errorf("cancel order %d: %w", id, err)
	}

	s.log.Info("order", "order cancelled", map[string]interface{}{"order_id": id})
	return nil
}

// PlaceOrder persists a finished draft. The stock re-check and
// decrement run inside one transaction with the insert, so two
// concurrent placements can never oversell the same product.
func (s *orderService) PlaceOrder(ctx context.Context, draft *dto.OrderDraft) (uint, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("begin order transaction: %w", err)
	}
	defer uow.Rollback()

	decremented, err := uow.ProductRepository().DecrementStock(ctx, draft.ProductId, draft.Quantity)
	if err != nil {
		return 0, fmt.Errorf("decrement stock for product %d: %w", draft.ProductId, err)
	}
	if !decremented {
		return 0, ErrInsufficientStock
	}

	order := &entity.Order{
		ProductId:       draft.ProductId,
		ProductName:     draft.ProductName,
		Category:        draft.Category,
		Color:           draft.Color,
		Material:        draft.Material,
		Style:           draft.Style,
		Size:            draft.Size,
		Price:           draft.Price,
		Quantity:        draft.Quantity,
		TotalPrice:      draft.TotalPrice,
		CustomerName:    draft.CustomerName,
		ShippingAddress: draft.ShippingAddress,
		Email:           draft.Email,
		Phone:           draft.Phone,
		PaymentInfo:     draft.PaymentInfo,
		Status:          entity.OrderStatusProcessing,
		CreatedAt:       time.Now(),
	}
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, fmt.Errorf("commit order transaction: %w", err)
	}

	s.log.Info("order", "order placed", map[string]interface{}{
		"order_id":   order.Id,
		"product_id": order.ProductId,
		"quantity":   order.Quantity,
	})

	s.publishOrderPlaced(ctx, order)
	return order.Id, nil
}

// publishOrderPlaced notifies downstream consumers. Notification is
// auxiliary: failures are logged, never surfaced to the customer.
func (s *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	msgJson, err := json.Marshal(dto.OrderPlacedMessage{
		OrderId:      order.Id,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		TotalPrice:   order.TotalPrice.StringFixed(2),
		CustomerName: order.CustomerName,
		Email:        order.Email,
	})
	if err != nil {
		s.log.Error("order", "failed to marshal order placed message", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("order", "failed to publish order placed message", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewOrderPlaced(order)); err != nil {
			s.log.Warn("order", "failed to publish ORDER_PLACED event to NATS", map[string]interface{}{
				"order_id": order.Id,
				"error":    err.Error(),
			})
		}
	}
}
