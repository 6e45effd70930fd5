package nameanalysis

import (
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/identifier"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// BasicAnalyzer splits hyphenated identifiers into verb, object and subject.
type BasicAnalyzer struct {
	verbs map[string]bool
}

// NewBasicAnalyzer creates a new BasicAnalyzer using the default verb list.
func NewBasicAnalyzer() ports.NameAnalyzer {
	return NewAnalyzerWithVerbs(defaultVerbs)
}

// NewAnalyzerWithVerbs creates a BasicAnalyzer that recognizes only verbs.
func NewAnalyzerWithVerbs(verbs []string) *BasicAnalyzer {
	set := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		set[v] = true
	}
	return &BasicAnalyzer{verbs: set}
}

// Analyze breaks a name such as "replace-regexp-in-string" into its parts:
// verb "replace", object "regexp", subject "string".
func (a *BasicAnalyzer) Analyze(name string) identifier.AnalyzedName {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return identifier.AnalyzedName{Original: name, Segments: []string{}}
	}

	segments := strings.Split(trimmed, "-")
	result := identifier.AnalyzedName{
		Original: name,
		Segments: segments,
		Internal: isInternal(trimmed),
	}
	if result.Internal || len(segments) < 2 || !a.verbs[segments[0]] {
		return result
	}

	verb, object, subject := a.splitVerbForm(segments)
	result.Verb = verb
	result.Object = object
	result.Subject = subject
	return result
}
