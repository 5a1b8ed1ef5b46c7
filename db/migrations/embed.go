// Package migrations contains the embedded SQL migration files that define
// the parts-catalog schema.
package migrations

import "embed"

// Files exposes the compiled-in migration SQL files.
//
//go:embed *.sql
var Files embed.FS
