package handler

import (
	"context"
	"errors"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/internal/service"
)

// Classify converts a service error into an error kind and a caller-safe
// message. This centralizes error handling for all endpoints: sentinel
// errors surface their own message, anything unexpected collapses to the
// generic internal message so infrastructure detail never leaks.
func Classify(err error) (model.ErrorKind, string) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		return model.KindNotFound, err.Error()

	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return model.KindConflict, err.Error()

	case errors.Is(err, service.ErrInvalidClientCredentials):
		return model.KindUnauthorized, err.Error()

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return model.KindInternal, genericInternalMessage

	default:
		return model.KindInternal, genericInternalMessage
	}
}
