package predefinedaliases

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/BurntSushi/toml"
)

// tomlTable is the document shape:
//
//	[[alias]]
//	alias = "string-split"
//	target = "split-string"
type tomlTable struct {
	Alias []alias.Entry `toml:"alias"`
}

// TOMLProvider implements the AliasTableProvider interface for TOML files.
type TOMLProvider struct {
	filePath string
}

// NewTOMLProvider creates a provider reading filePath.
func NewTOMLProvider(filePath string) (ports.AliasTableProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("TOML file path cannot be empty")
	}
	return &TOMLProvider{filePath: filePath}, nil
}

func (p *TOMLProvider) SourceIdentifier() string {
	return p.filePath
}

// GetAliasTable parses the file. A missing file yields an empty table.
// Keys the table shape does not know about are rejected.
func (p *TOMLProvider) GetAliasTable() ([]alias.Entry, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []alias.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read alias table %s: %w", p.filePath, err)
	}
	return decodeTOMLTable(data, p.filePath)
}

func decodeTOMLTable(data []byte, source string) ([]alias.Entry, error) {
	var doc tomlTable
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal alias table from %s: %w", source, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to unmarshal alias table from %s: unknown keys %v", source, undecoded)
	}
	if doc.Alias == nil {
		return []alias.Entry{}, nil
	}
	return doc.Alias, nil
}
