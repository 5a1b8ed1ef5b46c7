package database

import "errors"

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("database: not found")

// ErrInvalidCatalog indicates a catalog row that violates the store invariants
// (missing URL or URL without an explicit scheme) and must not be persisted.
var ErrInvalidCatalog = errors.New("database: invalid catalog record")
