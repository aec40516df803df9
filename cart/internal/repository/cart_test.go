package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leandriiito/Cart-API-Service/cart/pkg/cart"
)

func setupTestStore(t *testing.T) (RedisCartStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCartStore(client), mr
}

func seededCart(userID uuid.UUID) cart.Cart {
	crt := cart.New(userID)
	crt.AddItem(cart.Item{
		ProductID: uuid.MustParse("00000000-0000-0000-0000-000000000456"),
		Sku:       "WH-001",
		Title:     "Wireless Headphones",
		Quantity:  2,
		Price:     decimal.RequireFromString("29.99"),
		Currency:  "USD",
	})
	return crt
}

func TestLoadAbsentCartIsNotAnError(t *testing.T) {
	store, _ := setupTestStore(t)

	crt, found, err := store.Load(context.Background(), cart.Key(uuid.New()))

	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, crt.IsValid())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	userID := uuid.New()
	saved := seededCart(userID)

	err := store.Save(context.Background(), saved.Key(), saved)
	require.NoError(t, err)

	loaded, found, err := store.Load(context.Background(), cart.Key(userID))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, userID, loaded.UserID)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, saved.Items[0].ProductID, loaded.Items[0].ProductID)
	assert.True(t, loaded.Items[0].Price.Equal(decimal.RequireFromString("29.99")))
	assert.True(t, loaded.Total.Equal(decimal.RequireFromString("59.98")))
	assert.Equal(t, saved.Currency, loaded.Currency)
}

func TestSaveUsesCartKeyFormat(t *testing.T) {
	store, mr := setupTestStore(t)
	userID := uuid.MustParse("8f14e45f-ceea-4e7b-a3f5-7f2c6c2b4c31")
	crt := seededCart(userID)

	err := store.Save(context.Background(), crt.Key(), crt)
	require.NoError(t, err)

	assert.True(t, mr.Exists("cart:8f14e45f-ceea-4e7b-a3f5-7f2c6c2b4c31"))
}

func TestDelete(t *testing.T) {
	store, mr := setupTestStore(t)
	userID := uuid.New()
	crt := seededCart(userID)
	require.NoError(t, store.Save(context.Background(), crt.Key(), crt))

	err := store.Delete(context.Background(), cart.Key(userID))
	require.NoError(t, err)

	assert.False(t, mr.Exists(cart.Key(userID)))
	_, found, err := store.Load(context.Background(), cart.Key(userID))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadCorruptedValue(t *testing.T) {
	store, mr := setupTestStore(t)
	key := cart.Key(uuid.New())
	require.NoError(t, mr.Set(key, "not-json"))

	_, _, err := store.Load(context.Background(), key)

	assert.Error(t, err)
}
