package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemTotalPrice(t *testing.T) {
	item := headphones(3)

	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("89.97")))
}

func TestItemTotalPriceIsExact(t *testing.T) {
	item := Item{
		ProductID: uuid.New(),
		Title:     "Cable",
		Quantity:  3,
		Price:     decimal.RequireFromString("0.10"),
	}

	// 0.1*3 is not representable in binary floating point; decimal keeps it exact.
	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("0.30")))
}

func TestItemIsValid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Item)
		expected bool
	}{
		{
			name:     "given complete item should be valid",
			mutate:   func(i *Item) {},
			expected: true,
		},
		{
			name:     "given missing product id should be invalid",
			mutate:   func(i *Item) { i.ProductID = uuid.Nil },
			expected: false,
		},
		{
			name:     "given blank title should be invalid",
			mutate:   func(i *Item) { i.Title = "   " },
			expected: false,
		},
		{
			name:     "given zero quantity should be invalid",
			mutate:   func(i *Item) { i.Quantity = 0 },
			expected: false,
		},
		{
			name:     "given non-positive price should be invalid",
			mutate:   func(i *Item) { i.Price = decimal.Zero },
			expected: false,
		},
		{
			name:     "given negative price should be invalid",
			mutate:   func(i *Item) { i.Price = decimal.RequireFromString("-1") },
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := headphones(1)
			tt.mutate(&item)
			assert.Equal(t, tt.expected, item.IsValid())
		})
	}
}
