package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Leandriiito/Cart-API-Service/cart/pkg/cart"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/response"
)

// memoryStore is an in-memory CartStore double; failLoad/failSave force the
// store-unavailable paths.
type memoryStore struct {
	mu       sync.Mutex
	carts    map[string]cart.Cart
	failLoad bool
	failSave bool
	saves    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]cart.Cart{}}
}

func (m *memoryStore) Load(_ context.Context, key string) (cart.Cart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoad {
		return cart.Cart{}, false, errors.New("store unavailable")
	}
	crt, ok := m.carts[key]
	return crt, ok, nil
}

func (m *memoryStore) Save(_ context.Context, key string, crt cart.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave {
		return errors.New("store unavailable")
	}
	m.carts[key] = crt
	m.saves++
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}

type fakeProductFinder struct {
	products map[uuid.UUID]response.Product
}

func (f fakeProductFinder) FindProductById(
	_ context.Context,
	productId uuid.UUID,
) (response.Product, error) {
	product, ok := f.products[productId]
	if !ok {
		return response.Product{}, errors.New("product not found")
	}
	return product, nil
}

type fakeUserFinder struct {
	users map[uuid.UUID]response.User
}

func (f fakeUserFinder) FindUserById(
	_ context.Context,
	userId uuid.UUID,
) (response.User, error) {
	user, ok := f.users[userId]
	if !ok {
		return response.User{}, errors.New("user not found")
	}
	return user, nil
}

func headphonesProduct() response.Product {
	return response.Product{
		ID:       uuid.MustParse("00000000-0000-0000-0000-000000000456"),
		Sku:      "WH-001",
		Title:    "Wireless Headphones",
		Price:    decimal.RequireFromString("29.99"),
		Currency: "USD",
		Stock:    25,
		IsActive: true,
	}
}

func activeUser(userId uuid.UUID) response.User {
	return response.User{ID: userId, Role: "user", Status: "active"}
}
