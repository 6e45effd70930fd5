package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// RejectedEntry pairs a table entry with the reason it was not registered.
type RejectedEntry struct {
	Entry alias.Entry
	Err   error
}

// LoadReport summarizes one table load. Total counts table entries and
// Registered the distinct names accepted; Replaced counts accepted entries
// that overwrote an earlier entry of the same table.
type LoadReport struct {
	Source     string
	Total      int
	Registered int
	Replaced   int
	Rejected   []RejectedEntry
}

// Description is everything known about a single name.
type Description struct {
	Name string
	// Entry is set when Name is itself an alias.
	Entry     *alias.Entry
	Kind      alias.Kind
	Canonical string
	Chain     []string
	// Resolvable is false when the chain ends at a name the host does not define.
	Resolvable bool
	// ResolveErr holds the resolution failure, if any.
	ResolveErr error
}

// AliasManagementService defines the contract for loading alias tables and
// using names through the registry.
type AliasManagementService interface {
	// LoadTable registers every entry from the configured provider.
	// Individual bad entries end up in the report; only a provider failure is an error.
	LoadTable() (LoadReport, error)

	Invoke(name string, args ...any) (any, error)
	ReadValue(name string) (any, error)
	WriteValue(name string, v any) error

	Describe(name string) (Description, error)

	// ListAliases returns registered aliases with the given prefix and kind.
	// An empty kind matches both.
	ListAliases(prefix string, kind alias.Kind) []alias.Entry
}
