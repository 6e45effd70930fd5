package aliasmanagement

import (
	"errors"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// registerBatch registers entries in one publish and pairs every rejection
// with the entry that caused it. It returns the number of distinct names
// accepted and how many accepted entries replaced an earlier one.
func (s *service) registerBatch(entries []alias.Entry) (int, int, []ports.RejectedEntry) {
	errs := s.registry.RegisterAll(entries)
	rejected := make([]ports.RejectedEntry, 0, len(errs))
	for _, err := range errs {
		var regErr *alias.RegistrationError
		if errors.As(err, &regErr) {
			rejected = append(rejected, ports.RejectedEntry{Entry: regErr.Entry, Err: regErr.Err})
			continue
		}
		rejected = append(rejected, ports.RejectedEntry{Err: err})
	}

	// Rejections come back in entry order, so one pass pairs them up.
	names := make(map[string]bool, len(entries))
	replaced, next := 0, 0
	for _, e := range entries {
		if next < len(rejected) && rejected[next].Entry == e {
			next++
			continue
		}
		if names[e.Name] {
			replaced++
		}
		names[e.Name] = true
	}
	return len(names), replaced, rejected
}
