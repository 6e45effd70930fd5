package testutil

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// MockAliasNameGenerator is a mock implementation of ports.AliasNameGenerator.
type MockAliasNameGenerator struct {
	GenerateSuggestionsFunc func(canonicalNames []string, taken map[string]bool) []alias.Entry
	IsValidAliasNameFunc    func(name string, taken map[string]bool) bool
}

func (m *MockAliasNameGenerator) GenerateSuggestions(canonicalNames []string, taken map[string]bool) []alias.Entry {
	if m.GenerateSuggestionsFunc != nil {
		return m.GenerateSuggestionsFunc(canonicalNames, taken)
	}
	return []alias.Entry{}
}

func (m *MockAliasNameGenerator) IsValidAliasName(name string, taken map[string]bool) bool {
	if m.IsValidAliasNameFunc != nil {
		return m.IsValidAliasNameFunc(name, taken)
	}
	return !taken[name]
}
