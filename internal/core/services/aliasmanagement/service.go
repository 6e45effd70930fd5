package aliasmanagement

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

type service struct {
	registry ports.AliasRegistry
	provider ports.AliasTableProvider // Can be nil when the embedding application registers aliases itself.
}

// NewService creates a new alias management service.
// It panics if the registry is nil.
func NewService(registry ports.AliasRegistry, provider ports.AliasTableProvider) ports.AliasManagementService {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &service{registry: registry, provider: provider}
}

// LoadTable reads the configured alias table and registers it in one batch.
// A missing provider loads nothing.
func (s *service) LoadTable() (ports.LoadReport, error) {
	var report ports.LoadReport
	if s.provider == nil {
		return report, nil
	}
	report.Source = s.provider.SourceIdentifier()

	entries, err := s.provider.GetAliasTable()
	if err != nil {
		return report, fmt.Errorf("failed to load alias table from %s: %w", report.Source, err)
	}
	report.Total = len(entries)

	report.Registered, report.Replaced, report.Rejected = s.registerBatch(entries)
	return report, nil
}

// Invoke resolves name as an operation and calls it with args.
func (s *service) Invoke(name string, args ...any) (any, error) {
	res, err := s.registry.ResolveOperation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", name, err)
	}
	return res.Entity(args...)
}

// ReadValue resolves name as a value and returns the cell's content.
func (s *service) ReadValue(name string) (any, error) {
	res, err := s.registry.ResolveValue(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", name, err)
	}
	return res.Entity.Load(), nil
}

// WriteValue resolves name as a value and stores v in the cell.
func (s *service) WriteValue(name string, v any) error {
	res, err := s.registry.ResolveValue(name)
	if err != nil {
		return fmt.Errorf("failed to resolve '%s': %w", name, err)
	}
	if err := res.Entity.Store(v); err != nil {
		return fmt.Errorf("failed to set '%s' (canonical '%s'): %w", name, res.Canonical, err)
	}
	return nil
}

// Describe reports what name is and where it leads. Only a malformed name is an
// error; a dangling alias or cycle is reported in the Description.
func (s *service) Describe(name string) (ports.Description, error) {
	if !alias.ValidName(name) {
		return ports.Description{}, fmt.Errorf("cannot describe %q: %w", name, alias.ErrInvalidName)
	}
	d := ports.Description{Name: name, Kind: alias.KindOperation}
	if e, ok := s.registry.Lookup(name); ok {
		d.Entry = &e
		d.Kind = e.Kind
	}

	var (
		canonical string
		chain     []string
		err       error
	)
	if d.Kind == alias.KindValue {
		res, rerr := s.registry.ResolveValue(name)
		canonical, chain, err = res.Canonical, res.Chain, rerr
	} else {
		res, rerr := s.registry.ResolveOperation(name)
		canonical, chain, err = res.Canonical, res.Chain, rerr
		if d.Entry == nil && errors.Is(err, alias.ErrNotFound) {
			// Not an alias and not an operation; it may still be a host value.
			if vres, verr := s.registry.ResolveValue(name); verr == nil {
				d.Kind = alias.KindValue
				canonical, chain, err = vres.Canonical, vres.Chain, nil
			}
		}
	}
	d.Canonical = canonical
	d.Chain = chain
	d.Resolvable = err == nil
	d.ResolveErr = err
	return d, nil
}

// ListAliases materializes the registry's lazy listing, optionally filtered by kind.
func (s *service) ListAliases(prefix string, kind alias.Kind) []alias.Entry {
	entries := []alias.Entry{}
	for e := range s.registry.ListAliases(prefix) {
		if kind != "" && e.Kind != kind {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
