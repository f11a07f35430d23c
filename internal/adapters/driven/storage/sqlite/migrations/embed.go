// Package migrations embeds the SQL migration files for the SQLite
// report store.
package migrations

import "embed"

// FS holds the migration files, applied in version order.
//
//go:embed *.sql
var FS embed.FS
