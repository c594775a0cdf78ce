// Package migrations embeds the versioned schema applied by the worker.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
