package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
)

// fetchAvailablePredefined returns the built-in entries that are not already
// registered from the table file, plus the size of the built-in table.
func fetchAvailablePredefined(svcs *Services) ([]alias.Entry, int, error) {
	builtin, err := svcs.Builtin.GetAliasTable()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read built-in aliases: %w", err)
	}

	taken := make(map[string]bool)
	for _, e := range svcs.Management.ListAliases("", "") {
		taken[e.Name] = true
	}
	for _, r := range svcs.Report.Rejected {
		taken[r.Entry.Name] = true
	}

	available := make([]alias.Entry, 0, len(builtin))
	for _, e := range builtin {
		if !taken[e.Name] {
			available = append(available, e)
		}
	}
	return available, len(builtin), nil
}
