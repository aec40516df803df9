package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the shape consumed from the product service. Fields beyond
// these are tolerated and ignored on decode.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Sku         string          `json:"sku"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int32           `json:"stock"`
	IsActive    bool            `json:"isActive"`
}

func (p Product) HasStock() bool {
	return p.Stock > 0
}

// IsAvailableForPurchase is the availability signal: active and in stock.
func (p Product) IsAvailableForPurchase() bool {
	return p.IsActive && p.HasStock()
}

func (p Product) HasValidPrice() bool {
	return p.Price.IsPositive()
}
