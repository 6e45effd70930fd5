package testutil

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// MockAliasTableProvider is a mock implementation of ports.AliasTableProvider.
type MockAliasTableProvider struct {
	GetAliasTableFunc    func() ([]alias.Entry, error)
	SourceIdentifierFunc func() string
}

func (m *MockAliasTableProvider) GetAliasTable() ([]alias.Entry, error) {
	if m.GetAliasTableFunc != nil {
		return m.GetAliasTableFunc()
	}
	return nil, nil
}

func (m *MockAliasTableProvider) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	return "mock table"
}
