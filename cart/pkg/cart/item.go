package cart

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	ProductID uuid.UUID       `validate:"required"       json:"productId"`
	Sku       string          `json:"sku,omitempty"`
	Title     string          `validate:"required"       json:"title"`
	Quantity  int32           `validate:"required,gte=1" json:"quantity"`
	Price     decimal.Decimal `validate:"required"       json:"price"`
	Currency  string          `json:"currency"`
}

// TotalPrice is derived on demand and never stored on the item.
func (i Item) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// IsValid gates admission of externally supplied items into a cart.
func (i Item) IsValid() bool {
	return i.ProductID != uuid.Nil &&
		strings.TrimSpace(i.Title) != "" &&
		i.Quantity > 0 &&
		i.Price.IsPositive()
}
