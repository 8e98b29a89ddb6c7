package storage

import "embed"

// migrationFS embeds the sqlite schema migrations into the binary so no
// migration files need to exist on disk at runtime.
//
//go:embed migrations/*.sql
var migrationFS embed.FS
