package dto

// OrderPlacedMessage is the payload published on the order-placed topic
// and consumed by the notification worker. It is self-contained so the
// consumer never re-reads the order.
type OrderPlacedMessage struct {
	OrderId      uint   `json:"order_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	TotalPrice   string `json:"total_price"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
}
