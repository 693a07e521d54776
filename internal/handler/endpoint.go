package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/internal/schema"
)

// Endpoint is the configuration triple for one body-carrying operation:
// an input schema, a service operation, and optional per-kind status
// overrides. Handle turns it into an http.HandlerFunc running the pipeline
// Received -> Validated -> Serviced, producing exactly one envelope per
// request and invoking the validator and the service at most once.
type Endpoint[T any] struct {
	Schema  schema.Schema
	Execute func(ctx context.Context, in schema.Validated) (T, error)

	// Statuses overrides the default kind-to-status mapping per entry.
	Statuses map[model.ErrorKind]int

	// Timeout bounds the service stage only; the validator and envelope
	// builder are synchronous and not subject to it.
	Timeout time.Duration
}

// Handle adapts an Endpoint into an http.HandlerFunc.
func Handle[T any](ep Endpoint[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := DecodeBody(r)
		if err != nil {
			WriteValidationFailure(w, []model.FieldError{{Field: "body", Message: err.Error()}}, ep.Statuses)
			return
		}

		in, fieldErrs := ep.Schema.Validate(raw)
		if len(fieldErrs) > 0 {
			WriteValidationFailure(w, fieldErrs, ep.Statuses)
			return
		}

		ctx := r.Context()
		if ep.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, ep.Timeout)
			defer cancel()
		}

		out, err := ep.Execute(ctx, in)
		if err != nil {
			WriteFailure(w, r, err, ep.Statuses)
			return
		}

		WriteSuccess(w, out)
	}
}
