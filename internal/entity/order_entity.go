package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are owned by the storage layer; the core
// only requests "create" (always Processing) and "cancel" (rejected for
// orders already on delivery).
const (
	OrderStatusProcessing = "Processing"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusOnDelivery = "On Delivery"
	OrderStatusDelivered  = "Delivered"
)

// Order is the persisted order record. Product attributes are copied at
// order time so later catalog changes never alter historical orders.
type Order struct {
	Id              uint
	ProductId       uint
	ProductName     string
	Category        string
	Color           string
	Material        string
	Style           string
	Size            string
	Price           decimal.Decimal
	Quantity        int
	TotalPrice      decimal.Decimal
	CustomerName    string
	ShippingAddress string
	Email           string
	Phone           string
	PaymentInfo     string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
