// Package client holds the HTTP collaborators of the cart service: the
// product catalog, which is the only trusted source for titles and prices,
// and the user service, which resolves the identity owning a cart.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Leandriiito/Cart-API-Service/cart/internal/common/otel"
	"github.com/Leandriiito/Cart-API-Service/cart/pkg/response"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	commonHttp "github.com/Leandriiito/Cart-API-Service/internal/common/http"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

type ProductClient struct {
	baseURL string
}

func NewProductClient(baseURL string) ProductClient {
	return ProductClient{baseURL: baseURL}
}

func (p ProductClient) FindProductById(
	c context.Context,
	productId uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductClient FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "ProductClient FindProductById").
		Str(log.KEY_PRODUCT_ID, productId.String()).
		Logger()

	logger = logger.With().
		Str(log.KEY_PROCESS, fmt.Sprintf("finding productId=%s in product-service", productId.String())).
		Logger()
	logger.Info().Msgf("finding productId=%s", productId.String())
	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		p.baseURL+"/"+productId.String(),
		nil,
	)
	if err != nil {
		err = fmt.Errorf("failed getting productId=%s with error=%w", productId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	req.Header.Add(commonHttp.KEY_HEADER_REQUEST_ID, log.RequestIDFromContext(c))
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed getting productId=%s with error=%w", productId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("productId=%s not found", productId.String())
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msgf("found productId=%s", productId.String())

	logger = logger.With().Str(log.KEY_PROCESS, "decoding product").Logger()
	product := response.Product{}
	err = json.NewDecoder(resp.Body).Decode(&product)
	if err != nil {
		err = fmt.Errorf("failed decoding productId=%s with error=%w", productId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Any(log.KEY_PRODUCT, product).Logger()
	logger.Info().Msg("decoded product")

	return product, nil
}
