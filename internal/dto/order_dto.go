package dto

import "github.com/shopspring/decimal"

// OrderDraft accumulates a single order-placement attempt. It is owned
// by one dialogue run, discarded on cancellation, and persisted as an
// Order only on successful submission.
type OrderDraft struct {
	ProductId       uint            `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	Color           string          `json:"color"`
	Material        string          `json:"material"`
	Style           string          `json:"style"`
	Size            string          `json:"size"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity" validate:"required,gte=1"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CustomerName    string          `json:"customer_name" validate:"required"`
	ShippingAddress string          `json:"shipping_address" validate:"required"`
	Email           string          `json:"email" validate:"required,looseemail"`
	Phone           string          `json:"phone" validate:"required,intlphone"`
	PaymentInfo     string          `json:"payment_info"`
}
