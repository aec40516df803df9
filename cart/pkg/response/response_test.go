package response

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductAvailability(t *testing.T) {
	tests := []struct {
		name      string
		product   Product
		available bool
	}{
		{
			name:      "given active product with stock should be available",
			product:   Product{IsActive: true, Stock: 25},
			available: true,
		},
		{
			name:      "given active product without stock should be unavailable",
			product:   Product{IsActive: true, Stock: 0},
			available: false,
		},
		{
			name:      "given inactive product with stock should be unavailable",
			product:   Product{IsActive: false, Stock: 25},
			available: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.available, tt.product.IsAvailableForPurchase())
		})
	}
}

func TestProductHasValidPrice(t *testing.T) {
	assert.True(t, Product{Price: decimal.RequireFromString("99.99")}.HasValidPrice())
	assert.False(t, Product{Price: decimal.Zero}.HasValidPrice())
	assert.False(t, Product{Price: decimal.RequireFromString("-1")}.HasValidPrice())
}

func TestProductDecodeIgnoresUnknownFields(t *testing.T) {
	id := uuid.New()
	body := `{
		"id": "` + id.String() + `",
		"sku": "WH-001",
		"title": "Wireless Headphones",
		"price": "29.99",
		"currency": "USD",
		"stock": 25,
		"isActive": true,
		"category": "Electronics",
		"rating": 4.7,
		"brand": "Sony"
	}`

	product := Product{}
	err := json.Unmarshal([]byte(body), &product)

	require.NoError(t, err)
	assert.Equal(t, id, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("29.99")))
	assert.True(t, product.IsAvailableForPurchase())
}

func TestUserHelpers(t *testing.T) {
	user := User{ID: uuid.New(), Role: "User", Status: "ACTIVE"}

	assert.True(t, user.IsActive())
	assert.True(t, user.IsUser())
	assert.False(t, user.IsAdmin())
}
