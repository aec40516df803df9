package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/Leandriiito/Cart-API-Service/internal/common/constants"
)

var Tracer = otel.Tracer(constants.APP_CART_SERVICE)
