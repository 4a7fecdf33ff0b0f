// Package store persists users, products and orders. Two backends exist,
// Postgres (pgx) and Mongo, selected at startup; handlers only see the
// interfaces and the sentinel errors below.
package store

import "errors"

var (
	// ErrNotFound covers both a missing record and a record the caller
	// does not own. Ownership-scoped queries filter by (id, owner) in a
	// single lookup so the two cases are never distinguished.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when registration hits the unique
	// email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
