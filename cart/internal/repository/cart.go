// Package repository persists carts in the external key-value store. Carts
// are addressed by cart.Key(ownerId); absence is a normal outcome meaning
// "this owner has no stored cart yet", not an error.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Leandriiito/Cart-API-Service/cart/internal/common/otel"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/cart"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

type CartStore interface {
	Load(c context.Context, key string) (cart.Cart, bool, error)
	Save(c context.Context, key string, crt cart.Cart) error
	Delete(c context.Context, key string) error
}

type RedisCartStore struct {
	client *redis.Client
}

func NewRedisCartStore(client *redis.Client) RedisCartStore {
	return RedisCartStore{client: client}
}

func (s RedisCartStore) Load(c context.Context, key string) (cart.Cart, bool, error) {
	c, span := otel.Tracer.Start(c, "RedisCartStore Load")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "RedisCartStore Load").
		Str(log.KEY_CACHE_KEY, key).
		Logger()

	logger.Info().Msg("finding cart in store")
	data, err := s.client.Get(c, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Info().Msg("cart not found in store")
		return cart.Cart{}, false, nil
	}
	if err != nil {
		err = fmt.Errorf("failed finding cart in store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, false, err
	}
	logger.Info().Msg("found cart in store")

	logger = logger.With().Str(log.KEY_PROCESS, "unmarshaling cart").Logger()
	crt := cart.Cart{}
	err = json.Unmarshal(data, &crt)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, false, err
	}
	logger.Info().Msg("unmarshaled cart")

	return crt, true, nil
}

func (s RedisCartStore) Save(c context.Context, key string, crt cart.Cart) error {
	c, span := otel.Tracer.Start(c, "RedisCartStore Save")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "RedisCartStore Save").
		Str(log.KEY_CACHE_KEY, key).
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "marshaling cart").Logger()
	data, err := json.Marshal(crt)
	if err != nil {
		err = fmt.Errorf("failed marshaling cart with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("marshaled cart")

	logger = logger.With().Str(log.KEY_PROCESS, "inserting cart to store").Logger()
	logger.Info().Msg("inserting cart to store")
	err = s.client.Set(c, key, data, 0).Err()
	if err != nil {
		err = fmt.Errorf("failed inserting cart to store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("inserted cart to store")

	return nil
}

func (s RedisCartStore) Delete(c context.Context, key string) error {
	c, span := otel.Tracer.Start(c, "RedisCartStore Delete")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "RedisCartStore Delete").
		Str(log.KEY_CACHE_KEY, key).
		Logger()

	logger.Info().Msg("deleting cart from store")
	err := s.client.Del(c, key).Err()
	if err != nil {
		err = fmt.Errorf("failed deleting cart from store with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart from store")

	return nil
}
