package migrations

import "embed"

// Files содержит SQL миграции в порядке версий
//
//go:embed *.sql
var Files embed.FS
