// Package handler implements the HTTP boundary of the Relay API.
//
// Each body-carrying endpoint is an Endpoint value: a declared input
// schema, a service call, and optional status overrides. Handle runs the
// fixed pipeline for every request: decode the body, validate it against
// the schema, call the service once with validated input, and write
// exactly one response envelope. Requests that fail validation never
// reach a service; service errors are classified centrally in Classify
// so unexpected faults surface only a generic message.
package handler
