package common

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Leandriiito/Cart-API-Service/internal/common/constants"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	"github.com/Leandriiito/Cart-API-Service/internal/common/otel"
	"github.com/Leandriiito/Cart-API-Service/internal/config"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

func VerifyToken(c context.Context, token string) (*jwt.Token, error) {
	c, span := otel.Tracer.Start(c, "VerifyToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "VerifyToken").
		Logger()

	logger = logger.With().Str(log.KEY_PROCESS, "initializing config").Logger()
	logger.Trace().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.APP_CART_SERVICE)
	logger.Trace().Msg("initialized config")

	logger = logger.With().Str(log.KEY_PROCESS, "parsing claims").Logger()
	logger.Trace().Msg("parsing claims")
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.Application.SecretKey), nil
		},
		jwt.WithAudience(constants.AUDIENCE_USER),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.ISSUER_USER),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing claims with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("parsed claims")

	logger = logger.With().Str(log.KEY_PROCESS, "validating token").Logger()
	logger.Trace().Msg("validating token")
	if !jwtToken.Valid {
		err = fmt.Errorf("failed validating token with error=%w", commonErrors.ErrTokenInvalid)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, commonErrors.ErrTokenInvalid
	}
	logger.Info().Msg("validated token")

	return jwtToken, nil
}

type jwtToken struct{}

func AttachJwtToken(c context.Context, jwt *jwt.Token) context.Context {
	return context.WithValue(c, jwtToken{}, jwt)
}

func JwtTokenFromContext(c context.Context) *jwt.Token {
	token, ok := c.Value(jwtToken{}).(*jwt.Token)
	if !ok {
		return nil
	}
	return token
}

func UserIdFromJwtToken(c context.Context) (uuid.UUID, error) {
	c, span := otel.Tracer.Start(c, "UserIdFromJwtToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "UserIdFromJwtToken").
		Str(log.KEY_PROCESS, "getting userId from jwtToken").
		Logger()

	logger.Trace().Msg("getting jwtToken from context")
	jwt := JwtTokenFromContext(c)
	if jwt == nil {
		err := fmt.Errorf("failed getting jwtToken with error=%w", commonErrors.ErrEmptyAuth)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	subject, err := jwt.Claims.GetSubject()
	if err != nil {
		err = fmt.Errorf("failed getting subject from jwt with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	if subject == "" {
		err = fmt.Errorf("failed getting subject with error=%w", commonErrors.ErrEmptySubject)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	logger.Info().Msg("got subject from jwtToken")

	logger.Trace().Msg("parsing subject")
	userId, err := uuid.Parse(subject)
	if err != nil {
		err = fmt.Errorf("failed parsing subject=%s with error=%w", subject, err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	logger = logger.With().Str(log.KEY_USER_ID, userId.String()).Logger()
	logger.Info().Msg("parsed subject as userId")

	return userId, nil
}
