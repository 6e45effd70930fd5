package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

/*
AliasNameGenerator defines the contract for a service that proposes
subject-prefix alias names for canonical host names.
This is a driven port, representing a domain capability.
*/
type AliasNameGenerator interface {
	// GenerateSuggestions proposes one alias per canonical name it can rename,
	// skipping proposals found in taken.
	GenerateSuggestions(canonicalNames []string, taken map[string]bool) []alias.Entry

	// IsValidAliasName checks a proposed name against identifier rules and the taken set.
	IsValidAliasName(name string, taken map[string]bool) bool
}
