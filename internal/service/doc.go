// Package service implements the business logic layer for the Relay API.
//
// Services are transport-agnostic: they accept validated values and context,
// never a raw request, and are testable without any HTTP machinery.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement one business operation each
//   - Expected business conditions return sentinel errors from errors.go
//   - Infrastructure faults are wrapped with %w and classified as internal at the boundary
//   - Context is passed through for cancellation and timeouts
package service
