// Package migrations embeds all SQL migration files in this directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
