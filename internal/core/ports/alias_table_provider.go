package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// AliasTableProvider defines the interface for sourcing alias declarations
// from configuration data, like an embedded table or a file.
type AliasTableProvider interface {
	// GetAliasTable loads entries in declaration order.
	GetAliasTable() ([]alias.Entry, error)

	// SourceIdentifier describes where the table comes from, for display.
	SourceIdentifier() string
}
