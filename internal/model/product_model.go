package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Id        uint            `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null;index"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Color     string          `gorm:"type:varchar(50);not null"`
	Material  string          `gorm:"type:varchar(100);not null"`
	Style     string          `gorm:"type:varchar(100);not null"`
	Size      string          `gorm:"type:varchar(20);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null;check:quantity >= 0"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
