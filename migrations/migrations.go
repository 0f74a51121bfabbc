// Package migrations embeds the SQL schema migrations so the binary and tests
// can apply them without a checkout on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
