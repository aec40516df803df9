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

type UserClient struct {
	baseURL string
}

func NewUserClient(baseURL string) UserClient {
	return UserClient{baseURL: baseURL}
}

func (u UserClient) FindUserById(c context.Context, userId uuid.UUID) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserClient FindUserById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "UserClient FindUserById").
		Str(log.KEY_USER_ID, userId.String()).
		Logger()

	logger = logger.With().
		Str(log.KEY_PROCESS, fmt.Sprintf("finding userId=%s in user-service", userId.String())).
		Logger()
	logger.Info().Msgf("finding userId=%s", userId.String())
	req, err := http.NewRequestWithContext(
		c,
		http.MethodGet,
		u.baseURL+"/"+userId.String(),
		nil,
	)
	if err != nil {
		err = fmt.Errorf("failed getting userId=%s with error=%w", userId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	req.Header.Add(commonHttp.KEY_HEADER_REQUEST_ID, log.RequestIDFromContext(c))
	resp, err := otelhttp.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed getting userId=%s with error=%w", userId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf(
			"userId=%s with error=%w",
			userId.String(),
			commonErrors.ErrUserNotFound,
		)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msgf("found userId=%s", userId.String())

	logger = logger.With().Str(log.KEY_PROCESS, "decoding user").Logger()
	user := response.User{}
	err = json.NewDecoder(resp.Body).Decode(&user)
	if err != nil {
		err = fmt.Errorf("failed decoding userId=%s with error=%w", userId.String(), err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("decoded user")

	return user, nil
}
