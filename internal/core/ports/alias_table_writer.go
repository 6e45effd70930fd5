package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// AliasTableWriter persists alias declarations to a table that a provider can
// later read back.
type AliasTableWriter interface {
	// AddEntries appends the entries whose names the table does not declare
	// yet and reports how many were written. Existing declarations are left
	// untouched.
	AddEntries(entries []alias.Entry) (added int, err error)

	// Destination describes where entries are written, for display.
	Destination() string
}
