package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Id              uint            `gorm:"primaryKey;autoIncrement"`
	ProductId       uint            `gorm:"not null;index"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(100);not null"`
	Color           string          `gorm:"type:varchar(50);not null"`
	Material        string          `gorm:"type:varchar(100);not null"`
	Style           string          `gorm:"type:varchar(100);not null"`
	Size            string          `gorm:"type:varchar(20);not null"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity        int             `gorm:"not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	Email           string          `gorm:"type:varchar(255);not null"`
	Phone           string          `gorm:"type:varchar(20);not null"`
	PaymentInfo     string          `gorm:"type:varchar(255);not null"`
	Status          string          `gorm:"type:varchar(50);not null;default:'Processing';index"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
