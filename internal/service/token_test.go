package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/relay/api/pkg/jwt"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestTokenService(t *testing.T, clients []Client) *TokenService {
	t.Helper()
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     []byte("test-secret-at-least-32-bytes-long!"),
		Issuer:     "test-issuer",
		Expiration: time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to create JWT service: %v", err)
	}
	return NewTokenService(TokenServiceConfig{JWTService: jwtService, Clients: clients})
}

func hashSecret(t *testing.T, secret string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}
	return string(hash)
}

// ============================================================================
// Issue Tests
// ============================================================================

func TestIssue_ValidCredentials_ReturnsBearerToken(t *testing.T) {
	t.Parallel()
	svc := newTestTokenService(t, []Client{{ID: "app", SecretHash: hashSecret(t, "s3cret")}})

	token, err := svc.Issue(context.Background(), "app", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", token.TokenType)
	}
	if token.AccessToken == "" {
		t.Error("expected non-empty access token")
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("expected 3600s lifetime, got %d", token.ExpiresIn)
	}
}

func TestIssue_WrongSecret_Unauthorized(t *testing.T) {
	t.Parallel()
	svc := newTestTokenService(t, []Client{{ID: "app", SecretHash: hashSecret(t, "s3cret")}})

	_, err := svc.Issue(context.Background(), "app", "wrong")
	if !errors.Is(err, ErrInvalidClientCredentials) {
		t.Errorf("expected ErrInvalidClientCredentials, got %v", err)
	}
}

func TestIssue_UnknownClient_IndistinguishableFromWrongSecret(t *testing.T) {
	t.Parallel()
	svc := newTestTokenService(t, []Client{{ID: "app", SecretHash: hashSecret(t, "s3cret")}})

	_, unknownErr := svc.Issue(context.Background(), "nobody", "s3cret")
	_, wrongErr := svc.Issue(context.Background(), "app", "wrong")

	if !errors.Is(unknownErr, ErrInvalidClientCredentials) {
		t.Fatalf("expected ErrInvalidClientCredentials, got %v", unknownErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Error("unknown client and wrong secret must produce the same error")
	}
}

// ============================================================================
// Verify Tests
// ============================================================================

func TestVerify_IssuedTokenRoundTrips(t *testing.T) {
	t.Parallel()
	svc := newTestTokenService(t, []Client{{ID: "app", SecretHash: hashSecret(t, "s3cret")}})

	token, err := svc.Issue(context.Background(), "app", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Verify(token.AccessToken)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.ClientID != "app" {
		t.Errorf("expected client ID in claims, got %q", claims.ClientID)
	}
}

func TestVerify_GarbageToken_Rejected(t *testing.T) {
	t.Parallel()
	svc := newTestTokenService(t, nil)

	if _, err := svc.Verify("not.a.token"); err == nil {
		t.Error("expected error for garbage token")
	}
}
