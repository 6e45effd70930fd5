package aliassuggestion

import (
	"sort"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
)

// unaliasedOperations returns host operation names that are not the target of
// any registered operation alias.
func (s *service) unaliasedOperations(hostNames []string) []string {
	covered := make(map[string]bool)
	for e := range s.registry.ListAliases("") {
		if e.Kind == alias.KindOperation {
			covered[e.Target] = true
		}
	}
	out := make([]string, 0, len(hostNames))
	for _, n := range hostNames {
		if !covered[n] {
			out = append(out, n)
		}
	}
	return out
}

// buildTakenNames creates the set of names a proposal must not reuse: every
// registered alias and every host operation.
func (s *service) buildTakenNames(hostNames []string) map[string]bool {
	taken := make(map[string]bool, len(hostNames)+s.registry.Len())
	for _, n := range hostNames {
		taken[n] = true
	}
	for e := range s.registry.ListAliases("") {
		taken[e.Name] = true
	}
	return taken
}

// filterAndSort keeps proposals under the subject prefix, drops duplicate
// names (first proposal wins), sorts by name and truncates to limit.
func (s *service) filterAndSort(proposals []alias.Entry, subject string, limit int) []alias.Entry {
	seen := make(map[string]bool, len(proposals))
	out := make([]alias.Entry, 0, len(proposals))
	for _, p := range proposals {
		if subject != "" && !strings.HasPrefix(p.Name, subject) {
			continue
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
