package ports

import (
	"iter"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
)

// AliasRegistry defines the contract for declaring and resolving name equivalences.
type AliasRegistry interface {
	// RegisterOperationAlias makes name invoke target. Re-registering a name overwrites it.
	// It fails with alias.ErrShadowsCanonical if name is already a host operation.
	RegisterOperationAlias(name, target, doc string) error

	// RegisterValueAlias makes name share target's storage cell.
	// It fails with alias.ErrInvalidAliasTarget if the host refuses to share the
	// cell or reserves name, and with alias.ErrShadowsCanonical if name is
	// already a host cell.
	RegisterValueAlias(name, target string) error

	// Register dispatches on entry.Kind.
	Register(entry alias.Entry) error

	// RegisterAll applies a batch and publishes it at once. The returned slice
	// holds one error per rejected entry; accepted entries are published regardless.
	RegisterAll(entries []alias.Entry) []error

	ResolveOperation(name string) (alias.Resolved[alias.Operation], error)
	ResolveValue(name string) (alias.Resolved[alias.Cell], error)

	// ListAliases yields entries whose name starts with prefix, in registration order.
	ListAliases(prefix string) iter.Seq[alias.Entry]

	Lookup(name string) (alias.Entry, bool)
	Len() int
}
