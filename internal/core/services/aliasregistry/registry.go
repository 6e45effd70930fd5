/*
Package aliasregistry implements the process-wide alias table: registration of
operation and value aliases, resolution through the host environment, and
prefix listing for completion.

The table is published behind an atomic pointer. Readers never lock; writers
serialize on a mutex and publish a fresh copy, so a reader always sees a whole
snapshot from before or after a registration.
*/
package aliasregistry

import (
	"fmt"
	"iter"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// Registry is the alias table bound to one host environment.
type Registry struct {
	host    ports.HostEnvironment
	current atomic.Pointer[table]
	writeMu sync.Mutex
}

var _ ports.AliasRegistry = (*Registry)(nil)

// New creates an empty registry resolving against host.
// It panics if host is nil.
func New(host ports.HostEnvironment) *Registry {
	if host == nil {
		panic("host environment cannot be nil")
	}
	r := &Registry{host: host}
	r.current.Store(newTable())
	return r
}

// RegisterOperationAlias records that invoking name is invoking target.
// The target does not need to exist yet, but name must not already be a host
// operation.
func (r *Registry) RegisterOperationAlias(name, target, doc string) error {
	return r.Register(alias.Entry{Name: name, Target: target, Kind: alias.KindOperation, Doc: doc})
}

// RegisterValueAlias records that name and target denote the same storage cell.
func (r *Registry) RegisterValueAlias(name, target string) error {
	return r.Register(alias.Entry{Name: name, Target: target, Kind: alias.KindValue})
}

// Register validates entry and publishes a table containing it.
func (r *Registry) Register(entry alias.Entry) error {
	entry, err := r.check(entry)
	if err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	next := r.current.Load().clone()
	next.put(entry)
	r.current.Store(next)
	return nil
}

// RegisterAll applies entries in order to a single copy of the table and
// publishes it once. Rejected entries are skipped and reported as
// *alias.RegistrationError; they never keep the rest of the batch from being
// published.
func (r *Registry) RegisterAll(entries []alias.Entry) []error {
	var errs []error

	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	next := r.current.Load().clone()
	for _, e := range entries {
		checked, err := r.check(e)
		if err != nil {
			errs = append(errs, &alias.RegistrationError{Entry: e, Err: err})
			continue
		}
		next.put(checked)
	}
	r.current.Store(next)
	return errs
}

func (r *Registry) check(entry alias.Entry) (alias.Entry, error) {
	entry.Kind = entry.EffectiveKind()
	if !alias.ValidName(entry.Name) {
		return entry, fmt.Errorf("alias name %q: %w", entry.Name, alias.ErrInvalidName)
	}
	if !alias.ValidName(entry.Target) {
		return entry, fmt.Errorf("target of %q is %q: %w", entry.Name, entry.Target, alias.ErrInvalidName)
	}
	switch entry.Kind {
	case alias.KindOperation:
		if _, ok := r.host.Operation(entry.Name); ok {
			return entry, fmt.Errorf("operation alias %q: %w", entry.Name, alias.ErrShadowsCanonical)
		}
	case alias.KindValue:
		if !r.host.Aliasable(entry.Name) {
			return entry, fmt.Errorf("value alias %q is a reserved name: %w", entry.Name, alias.ErrInvalidAliasTarget)
		}
		if _, ok := r.host.Cell(entry.Name); ok {
			return entry, fmt.Errorf("value alias %q: %w", entry.Name, alias.ErrShadowsCanonical)
		}
		if !r.host.Aliasable(entry.Target) {
			return entry, fmt.Errorf("value alias %q -> %q: %w", entry.Name, entry.Target, alias.ErrInvalidAliasTarget)
		}
	default:
		return entry, fmt.Errorf("alias %q has unknown kind %q", entry.Name, entry.Kind)
	}
	return entry, nil
}

// ResolveOperation follows operation aliases from name to a canonical name and
// returns the host's callable for it.
func (r *Registry) ResolveOperation(name string) (alias.Resolved[alias.Operation], error) {
	canonical, chain, err := r.chase(name, alias.KindOperation)
	if err != nil {
		return alias.Resolved[alias.Operation]{Chain: chain}, err
	}
	op, ok := r.host.Operation(canonical)
	if !ok || op == nil {
		return alias.Resolved[alias.Operation]{Canonical: canonical, Chain: chain},
			fmt.Errorf("operation %q (via %s): %w", canonical, strings.Join(chain, " -> "), alias.ErrNotFound)
	}
	return alias.Resolved[alias.Operation]{Entity: op, Canonical: canonical, Chain: chain}, nil
}

// ResolveValue follows value aliases from name to a canonical name and returns
// the host's storage cell for it.
func (r *Registry) ResolveValue(name string) (alias.Resolved[alias.Cell], error) {
	canonical, chain, err := r.chase(name, alias.KindValue)
	if err != nil {
		return alias.Resolved[alias.Cell]{Chain: chain}, err
	}
	cell, ok := r.host.Cell(canonical)
	if !ok || cell == nil {
		return alias.Resolved[alias.Cell]{Canonical: canonical, Chain: chain},
			fmt.Errorf("value %q (via %s): %w", canonical, strings.Join(chain, " -> "), alias.ErrNotFound)
	}
	return alias.Resolved[alias.Cell]{Entity: cell, Canonical: canonical, Chain: chain}, nil
}

// chase walks alias links of the given kind against one snapshot until it
// reaches a name that is not such an alias.
func (r *Registry) chase(name string, kind alias.Kind) (string, []string, error) {
	if !alias.ValidName(name) {
		return "", nil, fmt.Errorf("resolve %q: %w", name, alias.ErrInvalidName)
	}
	snap := r.current.Load()
	chain := []string{name}
	seen := map[string]bool{name: true}
	current := name
	for {
		e, ok := snap.get(current)
		if !ok || e.Kind != kind {
			return current, chain, nil
		}
		chain = append(chain, e.Target)
		if seen[e.Target] {
			return "", chain, fmt.Errorf("resolve %q: %s: %w", name, strings.Join(chain, " -> "), alias.ErrAliasCycle)
		}
		seen[e.Target] = true
		current = e.Target
	}
}

// ListAliases yields, in registration order, every entry whose name starts
// with prefix. Each iteration reads the snapshot current when it starts, so the
// sequence can be ranged over again to pick up later registrations.
func (r *Registry) ListAliases(prefix string) iter.Seq[alias.Entry] {
	return func(yield func(alias.Entry) bool) {
		snap := r.current.Load()
		for _, e := range snap.entries {
			if !strings.HasPrefix(e.Name, prefix) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (alias.Entry, bool) {
	return r.current.Load().get(name)
}

// Len returns the number of registered aliases.
func (r *Registry) Len() int {
	return len(r.current.Load().entries)
}
