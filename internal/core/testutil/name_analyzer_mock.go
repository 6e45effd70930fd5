package testutil

import (
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/identifier"
)

// MockNameAnalyzer is a mock implementation of ports.NameAnalyzer.
type MockNameAnalyzer struct {
	AnalyzeFunc func(name string) identifier.AnalyzedName
	// Results, when set, is consulted before AnalyzeFunc.
	Results map[string]identifier.AnalyzedName
}

func NewMockNameAnalyzer() *MockNameAnalyzer {
	return &MockNameAnalyzer{Results: make(map[string]identifier.AnalyzedName)}
}

func (m *MockNameAnalyzer) Analyze(name string) identifier.AnalyzedName {
	if r, ok := m.Results[name]; ok {
		return r
	}
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(name)
	}
	return identifier.AnalyzedName{Original: name, Segments: strings.Split(name, "-")}
}
