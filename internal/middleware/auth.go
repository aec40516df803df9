package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Leandriiito/Cart-API-Service/internal/common"
	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	commonHttp "github.com/Leandriiito/Cart-API-Service/internal/common/http"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).
			With().
			Str(log.KEY_TAG, "middleware Auth").
			Logger()
		c := logger.WithContext(r.Context())

		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			logger.Error().
				Err(commonErrors.ErrEmptyAuth).
				Msg(commonErrors.ErrEmptyAuth.Error())
			commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    commonErrors.ErrEmptyAuth.Error(),
			})
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")
		jwtToken, err := common.VerifyToken(c, token)
		if err != nil {
			logger.Error().Err(err).Msg(err.Error())
			commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
				"status":     "failed",
				"statusCode": http.StatusUnauthorized,
				"message":    commonErrors.ErrTokenInvalid.Error(),
			})
			return
		}

		c = common.AttachJwtToken(c, jwtToken)
		next.ServeHTTP(w, r.WithContext(c))
	})
}
