package ports

import "github.com/AntonioJCosta/aliasreg/internal/core/domain/identifier"

/*
NameAnalyzer defines the contract for a service that analyzes an identifier.
This is a driven port, representing a domain capability.
*/
type NameAnalyzer interface {
	Analyze(name string) identifier.AnalyzedName
}
