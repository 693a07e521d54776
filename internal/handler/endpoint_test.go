package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/relay/api/internal/model"
	"github.com/forgo/relay/api/internal/schema"
)

var echoSchema = schema.Schema{
	Name: "test.echo",
	Fields: []schema.Field{
		{Name: "name", Type: schema.TypeString, Required: true},
	},
}

func postEndpoint[T any](t *testing.T, ep Endpoint[T], body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/echo", strings.NewReader(body))
	rr := httptest.NewRecorder()
	Handle(ep).ServeHTTP(rr, req)
	return rr
}

// ============================================================================
// Timeout Tests
// ============================================================================

func TestHandle_TimeoutBoundsServiceStage(t *testing.T) {
	t.Parallel()
	ep := Endpoint[string]{
		Schema:  echoSchema,
		Timeout: 20 * time.Millisecond,
		Execute: func(ctx context.Context, in schema.Validated) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(2 * time.Second):
				return in.String("name"), nil
			}
		},
	}

	start := time.Now()
	rr := postEndpoint(t, ep, `{"name": "Ada"}`)

	assert.Less(t, time.Since(start), time.Second, "service stage must be cut off at the deadline")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Internal error", *env.Error)
	assert.NotContains(t, rr.Body.String(), "deadline", "timeout detail must not leak")
}

func TestHandle_FastServiceUnaffectedByTimeout(t *testing.T) {
	t.Parallel()
	ep := Endpoint[string]{
		Schema:  echoSchema,
		Timeout: time.Second,
		Execute: func(ctx context.Context, in schema.Validated) (string, error) {
			return in.String("name"), nil
		},
	}

	rr := postEndpoint(t, ep, `{"name": "Ada"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "Ada", env.Data)
}

// ============================================================================
// Status Override Tests
// ============================================================================

func TestHandle_StatusOverridePerKind(t *testing.T) {
	t.Parallel()
	ep := Endpoint[string]{
		Schema:   echoSchema,
		Statuses: map[model.ErrorKind]int{model.KindValidation: http.StatusUnprocessableEntity},
		Execute: func(ctx context.Context, in schema.Validated) (string, error) {
			return in.String("name"), nil
		},
	}

	rr := postEndpoint(t, ep, `{"name": "Ada", "extra": true}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, "extra: unknown field", *env.Error)
}

func TestHandle_OverrideLeavesOtherKindsAtDefaults(t *testing.T) {
	t.Parallel()
	ep := Endpoint[string]{
		Schema:   echoSchema,
		Statuses: map[model.ErrorKind]int{model.KindValidation: http.StatusUnprocessableEntity},
		Execute: func(ctx context.Context, in schema.Validated) (string, error) {
			return "", context.DeadlineExceeded
		},
	}

	rr := postEndpoint(t, ep, `{"name": "Ada"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
