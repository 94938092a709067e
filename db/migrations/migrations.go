// Package migrations holds the campaign schema as numbered golang-migrate
// files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the newest migration number in FS.
const Version = 1

// Table is the bookkeeping table golang-migrate writes its version to.
const Table = "campaign_lens_migrations"
