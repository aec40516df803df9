package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	commonErrors "github.com/Leandriiito/Cart-API-Service/internal/common/errors"
	"github.com/Leandriiito/Cart-API-Service/internal/common/otel"
	"github.com/Leandriiito/Cart-API-Service/internal/log"
)

func WriteJsonResponse(
	c context.Context,
	w http.ResponseWriter,
	header map[string]string,
	body map[string]interface{},
) {
	c, span := otel.Tracer.Start(c, "WriteJsonResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KEY_TAG, "WriteJsonResponse").Logger()

	w.Header().Add(KEY_HEADER_CONTENT_TYPE, VALUE_HEADER_APPLICATION_JSON)
	for k, v := range header {
		w.Header().Add(k, v)
	}

	if v, ok := body["statusCode"]; ok {
		w.WriteHeader(v.(int))
	}

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}
