package model

import (
	"fmt"
	"strings"
)

// ErrorKind classifies why a service operation failed. The handler layer
// derives transport status codes from it; the closed set below is the
// complete vocabulary.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// Envelope is the uniform wire contract returned by every endpoint:
//
//	{"success": <bool>, "data": <T|null>, "error": <string|null>}
//
// Success is true iff Data is populated and Error is nil; the two payload
// fields are mutually exclusive.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// OK wraps a successful result in an envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps a failure message in an envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: &message}
}

// FieldError reports a single field that failed validation, with a
// machine-readable field path and a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the error in the "field: reason" wire format.
func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationMessage joins field errors into a single envelope error string,
// e.g. "age: required" or "age: required; email: must be a string".
func ValidationMessage(errs []FieldError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
