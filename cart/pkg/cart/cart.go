// Package cart holds the cart aggregate: one owner's line items and the
// derived total. All mutation goes through the aggregate's methods so the
// invariants (one line per product, quantity >= 1, total equals the exact
// decimal sum of line totals) hold after every operation. The aggregate is
// not safe for concurrent use; callers serialize mutations per owner.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

const keyPrefix = "cart:"

// Key is the address of an owner's cart in the key-value store. The format
// must stay "cart:" + ownerId for compatibility with already stored carts.
func Key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

type Cart struct {
	UserID   uuid.UUID       `validate:"required" json:"userId"`
	Items    []Item          `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

func New(userID uuid.UUID) Cart {
	return Cart{
		UserID:   userID,
		Items:    []Item{},
		Total:    decimal.Zero,
		Currency: DefaultCurrency,
	}
}

func (c *Cart) Key() string {
	return Key(c.UserID)
}

// AddItem merges newItem into the line sharing its ProductID, summing
// quantities. The existing line's price, title and sku stay authoritative so
// a stale client snapshot cannot silently reprice a line. A product not yet
// in the cart is appended, preserving arrival order.
func (c *Cart) AddItem(newItem Item) {
	if c.Items == nil {
		c.Items = []Item{}
	}
	defer c.CalculateTotal()
	for i := range c.Items {
		if c.Items[i].ProductID == newItem.ProductID {
			c.Items[i].Quantity += newItem.Quantity
			return
		}
	}
	c.Items = append(c.Items, newItem)
}

// RemoveItem reports whether a line was removed. An absent productID is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.CalculateTotal()
			return true
		}
	}
	return false
}

// UpdateItemQuantity sets the quantity of an existing line. A quantity <= 0
// removes the line instead; a zero-quantity line must never exist. It
// reports false when no line matches productID and never creates one.
func (c *Cart) UpdateItemQuantity(productID uuid.UUID, quantity int32) bool {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.CalculateTotal()
			return true
		}
	}
	return false
}

// ClearItems is idempotent.
func (c *Cart) ClearItems() {
	c.Items = []Item{}
	c.Total = decimal.Zero
}

// CalculateTotal is the single source of truth for Total; every mutator
// invokes it before returning.
func (c *Cart) CalculateTotal() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	c.Total = total
}

// ItemCount sums quantities across lines, so two lines of quantities 3 and 4
// count as 7 units, not 2 lines.
func (c *Cart) ItemCount() int32 {
	var count int32
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// IsValid holds for any cart with an owner and a non-nil item collection; an
// empty cart is valid.
func (c *Cart) IsValid() bool {
	return c.UserID != uuid.Nil && c.Items != nil
}

// AcceptsCurrency rejects mixing settlement currencies within one cart. An
// empty incoming currency inherits the cart's.
func (c *Cart) AcceptsCurrency(currency string) bool {
	return currency == "" || currency == c.Currency
}

// ItemsView returns a copy so callers cannot mutate the internal collection
// behind the aggregate's back.
func (c *Cart) ItemsView() []Item {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return items
}
