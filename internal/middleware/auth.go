package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/pkg/jwt"
)

// TokenVerifier is the external collaborator that checks token validity.
// The guard itself only establishes presence.
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// GuardConfig controls the auth guard's behavior.
type GuardConfig struct {
	// Verify enables calling the verification collaborator on the extracted
	// token. When false the guard is a pure presence check.
	Verify bool

	// RedirectURL, when set, turns denials into a 302 redirect instead of a
	// 401 envelope. Intended for browser-facing deployments.
	RedirectURL string
}

// Guard returns a middleware that denies requests carrying no credential
// token before any handler work runs. A denied request never reaches the
// validator or the service layer.
func Guard(verifier TokenVerifier, cfg GuardConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				deny(w, r, cfg, "missing credential token")
				return
			}

			if cfg.Verify {
				claims, err := verifier.Verify(token)
				if err != nil {
					switch {
					case err == jwt.ErrTokenExpired:
						deny(w, r, cfg, "token expired")
					case err == jwt.ErrInvalidSignature:
						deny(w, r, cfg, "invalid token signature")
					default:
						deny(w, r, cfg, "invalid token")
					}
					return
				}
				ctx := context.WithValue(r.Context(), ClientIDKey, claims.ClientID)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func deny(w http.ResponseWriter, r *http.Request, cfg GuardConfig, message string) {
	if cfg.RedirectURL != "" {
		http.Redirect(w, r, cfg.RedirectURL, http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.Fail(message))
}

// GetClientID extracts the authenticated client ID from context.
func GetClientID(ctx context.Context) string {
	if id, ok := ctx.Value(ClientIDKey).(string); ok {
		return id
	}
	return ""
}
