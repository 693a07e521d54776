// Package model defines domain entities and the response contract for the
// Relay API.
//
// # Response Envelope
//
// Every endpoint returns the same envelope shape:
//
//	{"success": <bool>, "data": <T|null>, "error": <string|null>}
//
// Exactly one of data/error is populated. Construct envelopes with OK and
// Fail; no handler writes response bodies by hand.
//
// # Error Kinds
//
// ErrorKind is the closed vocabulary classifying service failures
// (validation, not_found, conflict, unauthorized, internal). The mapping
// from kinds to HTTP status codes lives in the handler package.
package model
