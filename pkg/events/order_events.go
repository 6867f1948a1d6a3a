package events

import (
	"time"

	"commerce-chatbot-be/internal/entity"
)

const TypeOrderPlaced = "ORDER_PLACED"

// NewOrderPlaced builds the event emitted after an order is persisted.
// The payload carries everything the notification consumer needs so it
// never has to re-read the order.
func NewOrderPlaced(order *entity.Order) Event {
	return BaseEvent{
		Type: TypeOrderPlaced,
		Data: map[string]interface{}{
			"order_id":      order.Id,
			"product_name":  order.ProductName,
			"quantity":      order.Quantity,
			"total_price":   order.TotalPrice.StringFixed(2),
			"customer_name": order.CustomerName,
			"email":         order.Email,
		},
		OccurredAt: time.Now(),
	}
}
