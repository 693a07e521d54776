package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/pkg/jwt"
)

// Client is a registered API client allowed to request tokens. SecretHash
// is a bcrypt hash; the plaintext secret is never stored.
type Client struct {
	ID         string
	SecretHash string
}

// TokenServiceConfig holds token service dependencies.
type TokenServiceConfig struct {
	JWTService *jwt.Service
	Clients    []Client
}

// TokenService issues and verifies access tokens for API clients.
type TokenService struct {
	jwt     *jwt.Service
	clients map[string]string
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	clients := make(map[string]string, len(cfg.Clients))
	for _, c := range cfg.Clients {
		clients[c.ID] = c.SecretHash
	}
	return &TokenService{
		jwt:     cfg.JWTService,
		clients: clients,
	}
}

// Issue exchanges client credentials for a signed access token. An unknown
// client and a wrong secret are indistinguishable to the caller.
func (s *TokenService) Issue(ctx context.Context, clientID, clientSecret string) (*model.Token, error) {
	hash, ok := s.clients[clientID]
	if !ok {
		return nil, ErrInvalidClientCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(clientSecret)); err != nil {
		return nil, ErrInvalidClientCredentials
	}

	token, err := s.jwt.Sign(jwt.Claims{
		Subject:  clientID,
		ClientID: clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.Expiration().Seconds()),
	}, nil
}

// Verify validates an access token and returns its claims. It implements
// the guard's verification collaborator.
func (s *TokenService) Verify(token string) (*jwt.Claims, error) {
	return s.jwt.Validate(token)
}
