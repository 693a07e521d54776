// Package middleware provides HTTP middleware for the Relay API, including
// the auth guard that denies unauthenticated requests before any business
// logic runs.
package middleware
