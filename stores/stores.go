// Package stores wraps the Postgres tables behind small, explicitly
// injected handles. Each store takes the shared goqu database at
// construction so nothing here depends on ambient globals.
package stores

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
// A delete of an already-deleted record reports it too.
var ErrNotFound = errors.New("record not found")
