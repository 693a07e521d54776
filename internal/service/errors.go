package service

import "errors"

// Centralized service layer errors.
// All expected business conditions returned by service methods are defined
// here so error classification in handlers stays predictable. Anything not
// in this list is an infrastructure fault and maps to an internal error at
// the boundary.

// ===== Member Errors =====
var (
	ErrMemberNotFound         = errors.New("member not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// ===== Token Errors =====
var (
	ErrInvalidClientCredentials = errors.New("invalid client credentials")
)
