package errors

import (
	"errors"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrEmptyAuth          = errors.New("missing authorization")
	ErrEmptySubject       = errors.New("missing subject")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrItemInvalid        = errors.New("cart item failed validation")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrCurrencyMismatch   = errors.New("item currency does not match cart currency")
	ErrProductUnavailable = errors.New("product is not available for purchase")
	ErrUserNotFound       = errors.New("user not found")
)

func HandleError(err error, span trace.Span) {
	if err == nil {
		return
	}
	span.AddEvent(err.Error())
	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}
