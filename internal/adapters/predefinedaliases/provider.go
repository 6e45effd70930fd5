package predefinedaliases

import (
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// NewProvider picks a provider for path: the embedded table when path is
// empty, TOML for .toml files, YAML otherwise.
func NewProvider(path string) (ports.AliasTableProvider, error) {
	if path == "" {
		return NewYAMLProvider()
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return NewTOMLProvider(path)
	}
	return NewYAMLFileProvider(path)
}
