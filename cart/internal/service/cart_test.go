package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leandriiito/Cart-API-Service/cart/pkg/cart"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/request"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/response"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
)

func newTestService(
	store *memoryStore,
	products map[uuid.UUID]response.Product,
	userId uuid.UUID,
) *CartService {
	return NewCartService(
		store,
		fakeProductFinder{products: products},
		fakeUserFinder{users: map[uuid.UUID]response.User{userId: activeUser(userId)}},
	)
}

func TestInsertCartItemEnrichesFromProductService(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	crt, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 2},
	)

	require.NoError(t, err)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, "Wireless Headphones", crt.Items[0].Title)
	assert.Equal(t, "WH-001", crt.Items[0].Sku)
	assert.True(t, crt.Items[0].Price.Equal(decimal.RequireFromString("29.99")))
	assert.True(t, crt.Total.Equal(decimal.RequireFromString("59.98")))

	stored, found, err := store.Load(context.Background(), cart.Key(userId))
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("59.98")))
}

func TestInsertCartItemMergesWithStoredLine(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 2},
	)
	require.NoError(t, err)

	// The catalog repriced between the two adds; the stored line's price
	// stays authoritative.
	repriced := product
	repriced.Price = decimal.RequireFromString("99.99")
	svc.products = fakeProductFinder{
		products: map[uuid.UUID]response.Product{product.ID: repriced},
	}

	crt, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 1},
	)

	require.NoError(t, err)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, int32(3), crt.Items[0].Quantity)
	assert.True(t, crt.Items[0].Price.Equal(decimal.RequireFromString("29.99")))
	assert.True(t, crt.Total.Equal(decimal.RequireFromString("89.97")))
}

func TestInsertCartItemRejectsUnavailableProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*response.Product)
	}{
		{
			name:   "given inactive product should reject",
			mutate: func(p *response.Product) { p.IsActive = false },
		},
		{
			name:   "given out of stock product should reject",
			mutate: func(p *response.Product) { p.Stock = 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userId := uuid.New()
			product := headphonesProduct()
			tt.mutate(&product)
			store := newMemoryStore()
			svc := newTestService(
				store,
				map[uuid.UUID]response.Product{product.ID: product},
				userId,
			)

			_, err := svc.InsertCartItem(
				context.Background(),
				userId,
				request.InsertCartItem{ProductId: product.ID, Quantity: 1},
			)

			require.ErrorIs(t, err, commonErrors.ErrProductUnavailable)
			assert.Zero(t, store.saves)
		})
	}
}

func TestInsertCartItemRejectsNonPositivePrice(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	product.Price = decimal.Zero
	store := newMemoryStore()
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 1},
	)

	require.ErrorIs(t, err, commonErrors.ErrItemInvalid)
	assert.Zero(t, store.saves)
}

func TestInsertCartItemRejectsCurrencyMismatch(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	product.Currency = "EUR"
	store := newMemoryStore()
	usd := cart.New(userId)
	store.carts[usd.Key()] = usd
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 1},
	)

	require.ErrorIs(t, err, commonErrors.ErrCurrencyMismatch)
	assert.Zero(t, store.saves)
}

func TestInsertCartItemUnknownUser(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	svc := NewCartService(
		store,
		fakeProductFinder{products: map[uuid.UUID]response.Product{product.ID: product}},
		fakeUserFinder{users: map[uuid.UUID]response.User{}},
	)

	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 1},
	)

	assert.Error(t, err)
	assert.Zero(t, store.saves)
}

func TestFindCartByUserIdReturnsFreshEmptyCartWhenAbsent(t *testing.T) {
	userId := uuid.New()
	store := newMemoryStore()
	svc := newTestService(store, nil, userId)

	crt, err := svc.FindCartByUserId(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, userId, crt.UserID)
	assert.True(t, crt.IsEmpty())
	assert.True(t, crt.IsValid())
	assert.True(t, crt.Total.IsZero())
	assert.Zero(t, store.saves, "absent cart must not be persisted by a read")
}

func TestUpdateCartItemQuantity(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()

	tests := []struct {
		name          string
		productId     uuid.UUID
		quantity      int32
		expectedErr   error
		expectedLines int
		expectedTotal string
	}{
		{
			name:          "given positive quantity should update line",
			productId:     product.ID,
			quantity:      5,
			expectedLines: 1,
			expectedTotal: "149.95",
		},
		{
			name:          "given negative quantity should remove line",
			productId:     product.ID,
			quantity:      -1,
			expectedLines: 0,
			expectedTotal: "0",
		},
		{
			name:        "given absent product should report not found",
			productId:   uuid.New(),
			quantity:    5,
			expectedErr: commonErrors.ErrItemNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			svc := newTestService(
				store,
				map[uuid.UUID]response.Product{product.ID: product},
				userId,
			)
			_, err := svc.InsertCartItem(
				context.Background(),
				userId,
				request.InsertCartItem{ProductId: product.ID, Quantity: 2},
			)
			require.NoError(t, err)

			crt, err := svc.UpdateCartItemQuantity(
				context.Background(),
				userId,
				tt.productId,
				tt.quantity,
			)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, crt.Items, tt.expectedLines)
			assert.True(t, crt.Total.Equal(decimal.RequireFromString(tt.expectedTotal)))
		})
	}
}

func TestRemoveCartItemMatchesUpdateToZero(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()

	run := func(mutate func(*CartService) (cart.Cart, error)) cart.Cart {
		store := newMemoryStore()
		svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)
		_, err := svc.InsertCartItem(
			context.Background(),
			userId,
			request.InsertCartItem{ProductId: product.ID, Quantity: 2},
		)
		require.NoError(t, err)
		crt, err := mutate(svc)
		require.NoError(t, err)
		return crt
	}

	removed := run(func(svc *CartService) (cart.Cart, error) {
		return svc.RemoveCartItem(context.Background(), userId, product.ID)
	})
	updated := run(func(svc *CartService) (cart.Cart, error) {
		return svc.UpdateCartItemQuantity(context.Background(), userId, product.ID, 0)
	})

	assert.Equal(t, removed.Items, updated.Items)
	assert.True(t, removed.Total.Equal(updated.Total))
	assert.True(t, removed.IsEmpty())
}

func TestRemoveCartItemNotFound(t *testing.T) {
	userId := uuid.New()
	store := newMemoryStore()
	svc := newTestService(store, nil, userId)

	_, err := svc.RemoveCartItem(context.Background(), userId, uuid.New())

	require.ErrorIs(t, err, commonErrors.ErrItemNotFound)
}

func TestClearCart(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)
	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 3},
	)
	require.NoError(t, err)

	crt, err := svc.ClearCart(context.Background(), userId)

	require.NoError(t, err)
	assert.True(t, crt.IsEmpty())
	assert.True(t, crt.Total.IsZero())
	assert.True(t, crt.IsValid())

	stored, found, err := store.Load(context.Background(), cart.Key(userId))
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, stored.IsEmpty())
}

func TestConcurrentInsertsDoNotLoseUpdates(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	workers := 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.InsertCartItem(
				context.Background(),
				userId,
				request.InsertCartItem{ProductId: product.ID, Quantity: 1},
			)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	crt, err := svc.FindCartByUserId(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, int32(workers), crt.ItemCount())
	assert.True(
		t,
		crt.Total.Equal(decimal.RequireFromString("29.99").Mul(decimal.NewFromInt(int64(workers)))),
	)
}

func TestStoreUnavailableSurfacesError(t *testing.T) {
	userId := uuid.New()
	product := headphonesProduct()
	store := newMemoryStore()
	store.failSave = true
	svc := newTestService(store, map[uuid.UUID]response.Product{product.ID: product}, userId)

	_, err := svc.InsertCartItem(
		context.Background(),
		userId,
		request.InsertCartItem{ProductId: product.ID, Quantity: 1},
	)

	assert.Error(t, err)
}
