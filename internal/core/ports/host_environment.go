package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

/*
HostEnvironment is the capability surface aliases point at: the primitive
operations and global storage cells of the embedding runtime. This is a driven
port; the registry only ever looks entities up through it.
*/
type HostEnvironment interface {
	// Operation returns the callable bound to name, if any.
	Operation(name string) (alias.Operation, bool)

	// Cell returns the storage cell bound to name, if any.
	Cell(name string) (alias.Cell, bool)

	// Aliasable reports whether the cell called name may be shared under
	// another name. Unknown names are aliasable.
	Aliasable(name string) bool

	// OperationNames lists every callable the host defines, sorted.
	OperationNames() []string
}
