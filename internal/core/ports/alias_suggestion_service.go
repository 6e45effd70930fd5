package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"

// SuggestionResult holds the suggestions and any relevant metadata.
type SuggestionResult struct {
	Suggestions []alias.Entry
	// Considered is how many host operations were examined.
	Considered    int
	SourceDetails string
}

// AliasSuggestionService defines the contract for proposing subject-prefix
// names for host operations that do not have one yet.
type AliasSuggestionService interface {
	// GetSuggestions returns proposals whose name starts with subject (all when
	// empty), at most limit of them when limit is positive.
	GetSuggestions(subject string, limit int) (SuggestionResult, error)
}
