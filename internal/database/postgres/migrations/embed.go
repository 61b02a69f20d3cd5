// Package migrations holds the goose migrations of the PostgreSQL store.
package migrations

import "embed"

// FS contains the embedded SQL migrations.
//
//go:embed *.sql
var FS embed.FS
