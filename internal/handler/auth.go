package handler

import (
	"context"
	"net/http"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/internal/schema"
)

// tokenSchema declares the credential exchange input shape.
var tokenSchema = schema.Schema{
	Name: "auth.token",
	Fields: []schema.Field{
		{Name: "client_id", Type: schema.TypeString, Required: true, MinLen: 1, MaxLen: 128},
		{Name: "client_secret", Type: schema.TypeString, Required: true, MinLen: 1, MaxLen: 256},
	},
}

// TokenIssuer defines the service interface the auth handler depends on.
type TokenIssuer interface {
	Issue(ctx context.Context, clientID, clientSecret string) (*model.Token, error)
}

// TokenHandler handles token issuance.
type TokenHandler struct {
	service TokenIssuer
}

// TokenHandlerConfig holds token handler dependencies.
type TokenHandlerConfig struct {
	Service TokenIssuer
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(cfg TokenHandlerConfig) *TokenHandler {
	return &TokenHandler{service: cfg.Service}
}

// Issue handles POST /v1/auth/token.
func (h *TokenHandler) Issue() http.HandlerFunc {
	return Handle(Endpoint[*model.Token]{
		Schema: tokenSchema,
		Execute: func(ctx context.Context, in schema.Validated) (*model.Token, error) {
			return h.service.Issue(ctx, in.String("client_id"), in.String("client_secret"))
		},
	})
}
