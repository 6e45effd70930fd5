/*
Package nativehost is a host environment whose primitives are written in Go.
It carries a small catalogue across the subject domains the alias table
covers (strings, regexps, files, lists, hash tables, symbols, processes,
buffers) and a set of global cells, some of them reserved.
*/
package nativehost

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// Host implements ports.HostEnvironment.
type Host struct {
	mu       sync.RWMutex
	ops      map[string]alias.Operation
	cells    map[string]*cell
	reserved map[string]bool

	executor ports.CommandExecutor
	buffers  *bufferSet
}

var _ ports.HostEnvironment = (*Host)(nil)

// New creates a host with the full primitive catalogue installed.
// executor backs the process primitives and may be nil, in which case they fail.
func New(executor ports.CommandExecutor) *Host {
	h := &Host{
		ops:      make(map[string]alias.Operation),
		cells:    make(map[string]*cell),
		reserved: make(map[string]bool),
		executor: executor,
		buffers:  newBufferSet(),
	}
	h.installStrings()
	h.installFiles()
	h.installLists()
	h.installHashTables()
	h.installSymbols()
	h.installProcesses()
	h.installBuffers()
	h.installCells()
	return h
}

func (h *Host) installCells() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = string(filepath.Separator)
	}
	h.DefineCell("fill-column", 70)
	h.DefineCell("case-fold-search", true)
	h.DefineCell("default-directory", withTrailingSeparator(cwd))

	h.DefineCell("inhibit-quit", nil)
	h.Reserve("inhibit-quit")
	h.DefineCell("gc-cons-threshold", 800000)
	h.Reserve("gc-cons-threshold")
}

// DefineOperation binds op to name, replacing any previous binding.
func (h *Host) DefineOperation(name string, op alias.Operation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops[name] = op
}

// DefineCell creates or resets the cell called name.
func (h *Host) DefineCell(name string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.cells[name]; ok {
		_ = c.Store(v)
		return
	}
	h.cells[name] = &cell{v: v}
}

// Reserve marks the cell called name as internal: it cannot be value-aliased.
func (h *Host) Reserve(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reserved[name] = true
}

func (h *Host) Operation(name string) (alias.Operation, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	op, ok := h.ops[name]
	return op, ok
}

func (h *Host) Cell(name string) (alias.Cell, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.cells[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func (h *Host) Aliasable(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return !h.reserved[name]
}

func (h *Host) OperationNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.ops))
	for n := range h.ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// lookupCell reads a cell's value for primitives that depend on one.
func (h *Host) lookupCell(name string) any {
	c, ok := h.Cell(name)
	if !ok {
		return nil
	}
	return c.Load()
}

type cell struct {
	mu sync.RWMutex
	v  any
}

func (c *cell) Load() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

func (c *cell) Store(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
	return nil
}

func withTrailingSeparator(dir string) string {
	if dir == "" || os.IsPathSeparator(dir[len(dir)-1]) {
		return dir
	}
	return dir + string(filepath.Separator)
}
