package testutil

import (
	"sort"
	"sync"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
)

// MockHostEnvironment is a mock implementation of ports.HostEnvironment for testing.
type MockHostEnvironment struct {
	OperationFunc      func(name string) (alias.Operation, bool)
	CellFunc           func(name string) (alias.Cell, bool)
	AliasableFunc      func(name string) bool
	OperationNamesFunc func() []string
}

func (m *MockHostEnvironment) Operation(name string) (alias.Operation, bool) {
	if m.OperationFunc != nil {
		return m.OperationFunc(name)
	}
	return nil, false
}

func (m *MockHostEnvironment) Cell(name string) (alias.Cell, bool) {
	if m.CellFunc != nil {
		return m.CellFunc(name)
	}
	return nil, false
}

func (m *MockHostEnvironment) Aliasable(name string) bool {
	if m.AliasableFunc != nil {
		return m.AliasableFunc(name)
	}
	return true
}

func (m *MockHostEnvironment) OperationNames() []string {
	if m.OperationNamesFunc != nil {
		return m.OperationNamesFunc()
	}
	return nil
}

// MemoryCell is a mutex-guarded alias.Cell.
type MemoryCell struct {
	mu sync.RWMutex
	v  any
}

func NewMemoryCell(v any) *MemoryCell {
	return &MemoryCell{v: v}
}

func (c *MemoryCell) Load() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

func (c *MemoryCell) Store(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
	return nil
}

// NewMapHost builds a MockHostEnvironment over fixed maps. Names listed in
// reserved are reported as not aliasable.
func NewMapHost(ops map[string]alias.Operation, cells map[string]alias.Cell, reserved ...string) *MockHostEnvironment {
	res := make(map[string]bool, len(reserved))
	for _, n := range reserved {
		res[n] = true
	}
	return &MockHostEnvironment{
		OperationFunc: func(name string) (alias.Operation, bool) {
			op, ok := ops[name]
			return op, ok
		},
		CellFunc: func(name string) (alias.Cell, bool) {
			c, ok := cells[name]
			return c, ok
		},
		AliasableFunc: func(name string) bool {
			return !res[name]
		},
		OperationNamesFunc: func() []string {
			names := make([]string, 0, len(ops))
			for n := range ops {
				names = append(names, n)
			}
			sort.Strings(names)
			return names
		},
	}
}
