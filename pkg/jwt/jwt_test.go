package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Secret:     []byte("test-secret-at-least-32-bytes-long!"),
		Issuer:     "test-issuer",
		Expiration: expiration,
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

// ============================================================================
// NewService Tests
// ============================================================================

func TestNewService_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{Issuer: "test"})
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}
}

func TestNewService_DefaultExpiration(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 0)
	if svc.Expiration() != time.Hour {
		t.Errorf("expected 1h default expiration, got %v", svc.Expiration())
	}
}

// ============================================================================
// Sign / Validate Tests
// ============================================================================

func TestSignValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, time.Hour)

	token, err := svc.Sign(Claims{Subject: "app", ClientID: "app"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != "app" || claims.ClientID != "app" {
		t.Errorf("claims not preserved: %+v", claims)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer filled in, got %q", claims.Issuer)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry must be after issuance")
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, -time.Minute)

	token, err := svc.Sign(Claims{Subject: "app"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedPayload(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, time.Hour)

	token, err := svc.Sign(Claims{Subject: "app"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = encodeSegment([]byte(`{"sub":"admin"}`))

	_, err = svc.Validate(strings.Join(parts, "."))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, time.Hour)

	other, err := NewService(Config{
		Secret: []byte("a-completely-different-signing-key!!"),
		Issuer: "test-issuer",
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	token, err := other.Sign(Claims{Subject: "app"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, time.Hour)

	other, err := NewService(Config{
		Secret: []byte("test-secret-at-least-32-bytes-long!"),
		Issuer: "someone-else",
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	token, err := other.Sign(Claims{Subject: "app"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_MalformedToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, time.Hour)

	for _, token := range []string{"", "one", "one.two", "one.two.three.four"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
