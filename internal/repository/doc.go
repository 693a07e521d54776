// Package repository implements data access over the database abstraction.
//
// Repositories translate between SurrealDB records and domain models. Lookup
// methods return (nil, nil) when a record does not exist; services decide
// whether absence is an error.
package repository
