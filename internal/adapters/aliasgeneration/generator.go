package aliasgeneration

import (
	"regexp"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// AliasGenerator proposes subject-prefix names for verb-first identifiers.
type AliasGenerator struct {
	analyzer ports.NameAnalyzer
}

// NewAliasGenerator creates a new AliasGenerator.
func NewAliasGenerator(analyzer ports.NameAnalyzer) ports.AliasNameGenerator {
	if analyzer == nil {
		panic("analyzer cannot be nil")
	}
	return &AliasGenerator{analyzer: analyzer}
}

// GenerateSuggestions proposes one alias per canonical name that is in
// verb-first form ("kill-buffer" -> "buffer-kill"). Names already in taken,
// or proposed earlier in the same run, are skipped.
func (g *AliasGenerator) GenerateSuggestions(canonicalNames []string, taken map[string]bool) []alias.Entry {
	suggestions := []alias.Entry{}
	generatedNamesInThisRun := make(map[string]bool)

	for _, name := range canonicalNames {
		proposal, ok := g.proposeName(name)
		if !ok {
			continue
		}
		if generatedNamesInThisRun[proposal] || !g.IsValidAliasName(proposal, taken) {
			continue
		}
		generatedNamesInThisRun[proposal] = true
		suggestions = append(suggestions, alias.Entry{
			Name:   proposal,
			Target: name,
			Kind:   alias.KindOperation,
		})
	}
	return suggestions
}

// validAliasNameRegex matches lower-case words joined by single hyphens.
var validAliasNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValidAliasName checks that name follows the hyphenated lower-case
// convention and is not already taken.
func (g *AliasGenerator) IsValidAliasName(name string, taken map[string]bool) bool {
	if len(name) < 3 {
		return false
	}
	if !validAliasNameRegex.MatchString(name) {
		return false
	}
	return !taken[name]
}
