package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/forgo/relay/api/internal/middleware"
	"github.com/forgo/relay/api/internal/model"
)

// genericInternalMessage is the only message an internal fault ever
// surfaces; detail goes to the log.
const genericInternalMessage = "Internal error"

// defaultStatuses maps error kinds to transport status codes. Endpoints may
// override entries per route.
var defaultStatuses = map[model.ErrorKind]int{
	model.KindValidation:   http.StatusBadRequest,
	model.KindUnauthorized: http.StatusUnauthorized,
	model.KindNotFound:     http.StatusNotFound,
	model.KindConflict:     http.StatusConflict,
	model.KindInternal:     http.StatusInternalServerError,
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteSuccess writes a success envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, model.OK(data))
}

// WriteFailure classifies err and writes exactly one failure envelope,
// logging internal faults with their real cause.
func WriteFailure(w http.ResponseWriter, r *http.Request, err error, statuses map[model.ErrorKind]int) {
	kind, message := Classify(err)
	if kind == model.KindInternal {
		slog.Error("internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	WriteJSON(w, statusFor(kind, statuses), model.Fail(message))
}

// WriteValidationFailure writes a validation envelope for field errors.
func WriteValidationFailure(w http.ResponseWriter, errs []model.FieldError, statuses map[model.ErrorKind]int) {
	WriteJSON(w, statusFor(model.KindValidation, statuses), model.Fail(model.ValidationMessage(errs)))
}

func statusFor(kind model.ErrorKind, overrides map[model.ErrorKind]int) int {
	if status, ok := overrides[kind]; ok {
		return status
	}
	if status, ok := defaultStatuses[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DecodeBody decodes a JSON request body into a raw map for schema
// validation. An empty body validates as an empty object so that schemas
// can report each missing required field individually.
func DecodeBody(r *http.Request) (map[string]any, error) {
	raw := map[string]any{}
	err := json.NewDecoder(r.Body).Decode(&raw)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return raw, nil
		}
		return nil, errors.New("malformed JSON body")
	}
	return raw, nil
}
