package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Leandriiito/Cart-API-Service/cart/internal/common/otel"
	"github.com/Leandriiito/Cart-API-Service/cart/internal/repository"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/cart"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/request"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/response"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

type ProductFinder interface {
	FindProductById(c context.Context, productId uuid.UUID) (response.Product, error)
}

type UserFinder interface {
	FindUserById(c context.Context, userId uuid.UUID) (response.User, error)
}

type CartService struct {
	store    repository.CartStore
	products ProductFinder
	users    UserFinder
	locks    keyedMutex
}

func NewCartService(
	store repository.CartStore,
	products ProductFinder,
	users UserFinder,
) *CartService {
	return &CartService{store: store, products: products, users: users}
}

// FindCartByUserId returns the owner's stored cart or a fresh empty one. A
// fresh cart is not persisted until its first mutation.
func (s *CartService) FindCartByUserId(c context.Context, userId uuid.UUID) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartByUserId")
	defer span.End()

	key := cart.Key(userId)

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService FindCartByUserId").
		Str(log.KEY_USER_ID, userId.String()).
		Str(log.KEY_CACHE_KEY, key).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "finding cart in store").Logger()
	logger.Info().Msg("finding cart in store")
	c = logger.WithContext(c)
	crt, found, err := s.store.Load(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !found {
		logger.Info().Msg("cart not found, creating empty cart")
		return cart.New(userId), nil
	}
	logger.Info().Msg("found cart in store")

	return crt, nil
}

// InsertCartItem adds a product to the owner's cart. The line item is built
// from the product service snapshot, never from client input; a product that
// is inactive or out of stock is rejected before the cart is touched.
func (s *CartService) InsertCartItem(
	c context.Context,
	userId uuid.UUID,
	param request.InsertCartItem,
) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService InsertCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService InsertCartItem").
		Str(log.KEY_USER_ID, userId.String()).
		Str(log.KEY_PRODUCT_ID, param.ProductId.String()).
		Int32(log.KEY_QUANTITY, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "finding user").Logger()
	logger.Info().Msgf("finding user by userId=%s", userId.String())
	c = logger.WithContext(c)
	user, err := s.users.FindUserById(c, userId)
	if err != nil {
		err = fmt.Errorf("failed finding userId=%s with error=%w", userId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msgf("found user by userId=%s", user.ID.String())

	logger = logger.With().Str(log.KEY_PROCESS, "finding product").Logger()
	logger.Info().Msgf("finding product by productId=%s", param.ProductId.String())
	product, err := s.products.FindProductById(c, param.ProductId)
	if err != nil {
		err = fmt.Errorf(
			"failed finding productId=%s with error=%w",
			param.ProductId.String(),
			err,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msgf("found product by productId=%s", product.ID.String())

	logger = logger.With().Str(log.KEY_PROCESS, "validating product").Logger()
	logger.Info().Msg("validating product availability")
	if !product.IsAvailableForPurchase() {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			param.ProductId.String(),
			commonErrors.ErrProductUnavailable,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !product.HasValidPrice() {
		err = fmt.Errorf(
			"productId=%s has non-positive price with error=%w",
			param.ProductId.String(),
			commonErrors.ErrItemInvalid,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("validated product availability")

	logger = logger.With().Str(log.KEY_PROCESS, "building cart item").Logger()
	currency := product.Currency
	if currency == "" {
		currency = cart.DefaultCurrency
	}
	item := cart.Item{
		ProductID: product.ID,
		Sku:       product.Sku,
		Title:     product.Title,
		Quantity:  param.Quantity,
		Price:     product.Price,
		Currency:  currency,
	}
	if !item.IsValid() {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			param.ProductId.String(),
			commonErrors.ErrItemInvalid,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger = logger.With().Any(log.KEY_CART_ITEM, item).Logger()
	logger.Info().Msg("built cart item")

	key := cart.Key(userId)
	unlock := s.locks.Lock(key)
	defer unlock()

	logger = logger.With().Str(log.KEY_PROCESS, "finding cart in store").Logger()
	logger.Info().Msg("finding cart in store")
	crt, found, err := s.store.Load(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !found {
		crt = cart.New(userId)
	}
	logger.Info().Msg("found cart in store")

	logger = logger.With().Str(log.KEY_PROCESS, "validating currency").Logger()
	if !crt.AcceptsCurrency(item.Currency) {
		err = fmt.Errorf(
			"item currency=%s cart currency=%s with error=%w",
			item.Currency,
			crt.Currency,
			commonErrors.ErrCurrencyMismatch,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}

	logger = logger.With().Str(log.KEY_PROCESS, "adding item to cart").Logger()
	logger.Info().Msg("adding item to cart")
	crt.AddItem(item)
	logger = logger.With().
		Any(log.KEY_TOTAL, crt.Total).
		Int32(log.KEY_QUANTITY, crt.ItemCount()).
		Logger()
	logger.Info().Msg("added item to cart")

	logger = logger.With().Str(log.KEY_PROCESS, "saving cart to store").Logger()
	logger.Info().Msg("saving cart to store")
	err = s.store.Save(c, key, crt)
	if err != nil {
		err = fmt.Errorf("failed saving cart to store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("saved cart to store")

	return crt, nil
}

// UpdateCartItemQuantity sets the quantity of an existing line; a quantity
// of zero or less removes the line, matching RemoveCartItem exactly.
func (s *CartService) UpdateCartItemQuantity(
	c context.Context,
	userId uuid.UUID,
	productId uuid.UUID,
	quantity int32,
) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItemQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService UpdateCartItemQuantity").
		Str(log.KEY_USER_ID, userId.String()).
		Str(log.KEY_PRODUCT_ID, productId.String()).
		Int32(log.KEY_QUANTITY, quantity).
		Logger()

	key := cart.Key(userId)
	unlock := s.locks.Lock(key)
	defer unlock()

	logger = logger.With().Str(log.KEY_PROCESS, "finding cart in store").Logger()
	logger.Info().Msg("finding cart in store")
	c = logger.WithContext(c)
	crt, found, err := s.store.Load(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !found {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			productId.String(),
			commonErrors.ErrItemNotFound,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("found cart in store")

	logger = logger.With().Str(log.KEY_PROCESS, "updating item quantity").Logger()
	logger.Info().Msg("updating item quantity")
	if !crt.UpdateItemQuantity(productId, quantity) {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			productId.String(),
			commonErrors.ErrItemNotFound,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger = logger.With().Any(log.KEY_TOTAL, crt.Total).Logger()
	logger.Info().Msg("updated item quantity")

	logger = logger.With().Str(log.KEY_PROCESS, "saving cart to store").Logger()
	logger.Info().Msg("saving cart to store")
	err = s.store.Save(c, key, crt)
	if err != nil {
		err = fmt.Errorf("failed saving cart to store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("saved cart to store")

	return crt, nil
}

// RemoveCartItem removes a line from the owner's cart. An absent productId
// is reported as ErrItemNotFound, an expected outcome rather than a failure
// of the cart itself.
func (s *CartService) RemoveCartItem(
	c context.Context,
	userId uuid.UUID,
	productId uuid.UUID,
) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService RemoveCartItem").
		Str(log.KEY_USER_ID, userId.String()).
		Str(log.KEY_PRODUCT_ID, productId.String()).
		Logger()

	key := cart.Key(userId)
	unlock := s.locks.Lock(key)
	defer unlock()

	logger = logger.With().Str(log.KEY_PROCESS, "finding cart in store").Logger()
	logger.Info().Msg("finding cart in store")
	c = logger.WithContext(c)
	crt, found, err := s.store.Load(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !found {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			productId.String(),
			commonErrors.ErrItemNotFound,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("found cart in store")

	logger = logger.With().Str(log.KEY_PROCESS, "removing item from cart").Logger()
	logger.Info().Msg("removing item from cart")
	if !crt.RemoveItem(productId) {
		err = fmt.Errorf(
			"productId=%s with error=%w",
			productId.String(),
			commonErrors.ErrItemNotFound,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger = logger.With().Any(log.KEY_TOTAL, crt.Total).Logger()
	logger.Info().Msg("removed item from cart")

	logger = logger.With().Str(log.KEY_PROCESS, "saving cart to store").Logger()
	logger.Info().Msg("saving cart to store")
	err = s.store.Save(c, key, crt)
	if err != nil {
		err = fmt.Errorf("failed saving cart to store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("saved cart to store")

	return crt, nil
}

// ClearCart empties the owner's cart. The cart row survives as a valid,
// reusable empty cart.
func (s *CartService) ClearCart(c context.Context, userId uuid.UUID) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "CartService ClearCart").
		Str(log.KEY_USER_ID, userId.String()).
		Logger()

	key := cart.Key(userId)
	unlock := s.locks.Lock(key)
	defer unlock()

	logger = logger.With().Str(log.KEY_PROCESS, "finding cart in store").Logger()
	logger.Info().Msg("finding cart in store")
	c = logger.WithContext(c)
	crt, found, err := s.store.Load(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !found {
		crt = cart.New(userId)
	}
	logger.Info().Msg("found cart in store")

	logger = logger.With().Str(log.KEY_PROCESS, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	crt.ClearItems()
	logger.Info().Msg("cleared cart")

	logger = logger.With().Str(log.KEY_PROCESS, "saving cart to store").Logger()
	logger.Info().Msg("saving cart to store")
	err = s.store.Save(c, key, crt)
	if err != nil {
		err = fmt.Errorf("failed saving cart to store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("saved cart to store")

	return crt, nil
}
