package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an immutable catalog snapshot read from storage per lookup.
// The dialogue core never mutates it; stock is decremented only inside
// the order placement transaction.
type Product struct {
	Id        uint
	Name      string
	Category  string
	Color     string
	Material  string
	Style     string
	Size      string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}
