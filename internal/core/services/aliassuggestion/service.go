package aliassuggestion

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

type service struct {
	host      ports.HostEnvironment
	registry  ports.AliasRegistry
	generator ports.AliasNameGenerator
}

// NewService creates a new alias suggestion service.
// It panics if host, registry or generator are nil.
func NewService(
	host ports.HostEnvironment,
	registry ports.AliasRegistry,
	generator ports.AliasNameGenerator,
) ports.AliasSuggestionService {
	if host == nil {
		panic("host cannot be nil")
	}
	if registry == nil {
		panic("registry cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}
	return &service{
		host:      host,
		registry:  registry,
		generator: generator,
	}
}

// GetSuggestions proposes subject-prefix aliases for host operations that no
// registered alias points at yet.
func (s *service) GetSuggestions(subject string, limit int) (ports.SuggestionResult, error) {
	var result ports.SuggestionResult
	if limit < 0 {
		return result, fmt.Errorf("limit must not be negative, got %d", limit)
	}

	hostNames := s.host.OperationNames()
	candidates := s.unaliasedOperations(hostNames)
	result.Considered = len(candidates)

	taken := s.buildTakenNames(hostNames)
	proposals := s.generator.GenerateSuggestions(candidates, taken)

	result.Suggestions = s.filterAndSort(proposals, subject, limit)
	result.SourceDetails = fmt.Sprintf("%d host operations, %d registered aliases", len(hostNames), s.registry.Len())
	return result, nil
}
