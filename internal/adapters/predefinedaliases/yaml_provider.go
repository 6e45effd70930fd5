package predefinedaliases

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed predefined_aliases.yaml
var embeddedPredefinedAliases []byte

const embeddedSource = "built-in alias table"

// YAMLProvider implements the AliasTableProvider interface by reading
// entries from YAML, either the embedded table or a file.
type YAMLProvider struct {
	filePath string // empty means the embedded table
}

// NewYAMLProvider creates a provider over the embedded alias table.
func NewYAMLProvider() (ports.AliasTableProvider, error) {
	return &YAMLProvider{}, nil
}

// NewYAMLFileProvider creates a provider reading filePath.
func NewYAMLFileProvider(filePath string) (ports.AliasTableProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// SourceIdentifier names the table's origin.
func (p *YAMLProvider) SourceIdentifier() string {
	if p.filePath == "" {
		return embeddedSource
	}
	return p.filePath
}

// GetAliasTable parses the table. A missing file or an empty document yields
// an empty table and no error.
func (p *YAMLProvider) GetAliasTable() ([]alias.Entry, error) {
	data := embeddedPredefinedAliases
	if p.filePath != "" {
		fileData, err := os.ReadFile(p.filePath)
		if err != nil {
			if os.IsNotExist(err) {
				return []alias.Entry{}, nil
			}
			return nil, fmt.Errorf("failed to read alias table %s: %w", p.filePath, err)
		}
		data = fileData
	}
	return decodeYAMLTable(data, p.SourceIdentifier())
}

func decodeYAMLTable(data []byte, source string) ([]alias.Entry, error) {
	entries := []alias.Entry{}
	if len(data) == 0 {
		return entries, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&entries); err != nil {
		// A document holding only comments decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal alias table from %s: %w", source, err)
	}
	return entries, nil
}
