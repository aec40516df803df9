package request

import (
	"github.com/google/uuid"
)

// InsertCartItem carries only the product reference and the desired
// quantity. Title, sku, price and currency are resolved from the product
// service so a client can never supply its own price.
type InsertCartItem struct {
	ProductId uuid.UUID `validate:"required,uuid"  json:"product_id"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

// UpdateCartItemQuantity deliberately has no gte constraint: a quantity of
// zero or less means "remove the line".
type UpdateCartItemQuantity struct {
	Quantity int32 `json:"quantity"`
}
