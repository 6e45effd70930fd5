/*
Package lisphost exposes a golisp environment as a host: operations are
function bindings in a private frame below the golisp global frame and value
cells are symbol bindings in that frame. Go primitives can be defined into it
and a whole host can be mirrored, so aliases and Lisp code see the same names.
*/
package lisphost

import (
	"fmt"
	"sort"
	"sync"

	"github.com/steelseries/golisp"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

const frameName = "aliasreg"

// Host implements ports.HostEnvironment on top of a golisp frame.
type Host struct {
	// evalMu serialises every touch of the frame; golisp frames are not
	// safe for concurrent evaluation.
	evalMu sync.Mutex
	env    *golisp.SymbolTableFrame

	mu       sync.RWMutex
	ops      map[string]bool
	cells    map[string]bool
	reserved map[string]bool
}

var _ ports.HostEnvironment = (*Host)(nil)

// New creates an empty host in a fresh frame.
func New() *Host {
	return &Host{
		env:      golisp.NewSymbolTableFrameBelow(golisp.Global, frameName),
		ops:      make(map[string]bool),
		cells:    make(map[string]bool),
		reserved: make(map[string]bool),
	}
}

// DefineOperation binds a Go operation as a Lisp primitive called name.
func (h *Host) DefineOperation(name string, op alias.Operation) error {
	prim := golisp.PrimitiveWithNameAndFunc(name, &golisp.PrimitiveFunction{
		Name:            name,
		Special:         false,
		ArgRestrictions: []golisp.ArgRestriction{{Type: golisp.ARGS_ANY}},
		IsRestricted:    false,
		Body: func(args *golisp.Data, _ *golisp.SymbolTableFrame) (*golisp.Data, error) {
			result, err := op(fromList(args)...)
			if err != nil {
				return nil, err
			}
			return toData(result)
		},
	})

	h.evalMu.Lock()
	_, err := h.env.BindLocallyTo(golisp.Intern(name), prim)
	h.evalMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to bind operation %s: %w", name, err)
	}

	h.mu.Lock()
	h.ops[name] = true
	h.mu.Unlock()
	return nil
}

// DefineFunction evaluates (define (name params) body) and tracks name as an operation.
func (h *Host) DefineFunction(name, params, body string) error {
	form := fmt.Sprintf("(define (%s %s) %s)", name, params, body)
	if _, err := h.eval(form); err != nil {
		return fmt.Errorf("failed to define function %s: %w", name, err)
	}
	if _, ok := h.Operation(name); !ok {
		return fmt.Errorf("failed to define function %s: binding is not a function", name)
	}

	h.mu.Lock()
	h.ops[name] = true
	h.mu.Unlock()
	return nil
}

// DefineCell binds name to v in the host frame.
func (h *Host) DefineCell(name string, v any) error {
	d, err := toData(v)
	if err != nil {
		return fmt.Errorf("failed to define cell %s: %w", name, err)
	}

	h.evalMu.Lock()
	_, err = h.env.BindLocallyTo(golisp.Intern(name), d)
	h.evalMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to define cell %s: %w", name, err)
	}

	h.mu.Lock()
	h.cells[name] = true
	h.mu.Unlock()
	return nil
}

// DefineReservedCell binds a protected cell that cannot be value-aliased.
func (h *Host) DefineReservedCell(name string, v any) error {
	d, err := toData(v)
	if err != nil {
		return fmt.Errorf("failed to define cell %s: %w", name, err)
	}

	h.evalMu.Lock()
	h.env.BindToProtected(golisp.Intern(name), d)
	h.evalMu.Unlock()

	h.mu.Lock()
	h.cells[name] = true
	h.reserved[name] = true
	h.mu.Unlock()
	return nil
}

// Mirror copies every operation of src into the frame, plus the named cells'
// current values. Cells src reserves stay reserved; names src lacks are skipped.
func (h *Host) Mirror(src ports.HostEnvironment, cells ...string) error {
	for _, name := range src.OperationNames() {
		op, ok := src.Operation(name)
		if !ok {
			continue
		}
		if err := h.DefineOperation(name, op); err != nil {
			return err
		}
	}
	for _, name := range cells {
		c, ok := src.Cell(name)
		if !ok {
			continue
		}
		define := h.DefineCell
		if !src.Aliasable(name) {
			define = h.DefineReservedCell
		}
		if err := define(name, c.Load()); err != nil {
			return err
		}
	}
	return nil
}

// Eval parses and evaluates Lisp source in the host frame.
func (h *Host) Eval(source string) (any, error) {
	d, err := h.eval(source)
	if err != nil {
		return nil, err
	}
	return fromData(d), nil
}

func (h *Host) eval(source string) (*golisp.Data, error) {
	h.evalMu.Lock()
	defer h.evalMu.Unlock()
	return golisp.ParseAndEvalInEnvironment(source, h.env)
}

// Operation returns a caller that looks name up afresh on every call, so
// redefinitions in Lisp are seen through existing aliases.
func (h *Host) Operation(name string) (alias.Operation, bool) {
	if !h.isFunction(name) {
		return nil, false
	}
	sym := golisp.Intern(name)
	return func(args ...any) (any, error) {
		list, err := toList(args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		h.evalMu.Lock()
		defer h.evalMu.Unlock()
		fn := h.env.ValueOf(sym)
		if fn == nil || !golisp.FunctionOrPrimitiveP(fn) {
			return nil, fmt.Errorf("%s: %w", name, alias.ErrNotFound)
		}
		result, err := golisp.ApplyWithoutEval(fn, list, h.env)
		if err != nil {
			return nil, err
		}
		return fromData(result), nil
	}, true
}

// isFunction reports whether the host frame itself binds name to a function.
// golisp's global library stays callable from Lisp code but is not part of
// the host catalogue.
func (h *Host) isFunction(name string) bool {
	h.evalMu.Lock()
	defer h.evalMu.Unlock()
	b, ok := h.env.BindingNamed(name)
	return ok && b.Val != nil && golisp.FunctionOrPrimitiveP(b.Val)
}

func (h *Host) Cell(name string) (alias.Cell, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.cells[name] {
		return nil, false
	}
	return &cell{host: h, sym: golisp.Intern(name), name: name}, true
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

// cell is a view of one symbol binding; every handle for the same name
// reads and writes the same binding.
type cell struct {
	host *Host
	sym  *golisp.Data
	name string
}

func (c *cell) Load() any {
	c.host.evalMu.Lock()
	defer c.host.evalMu.Unlock()
	return fromData(c.host.env.ValueOf(c.sym))
}

func (c *cell) Store(v any) error {
	d, err := toData(v)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", c.name, err)
	}
	c.host.evalMu.Lock()
	defer c.host.evalMu.Unlock()
	if _, err := c.host.env.SetTo(c.sym, d); err != nil {
		return fmt.Errorf("failed to set %s: %w", c.name, err)
	}
	return nil
}
