/*
Package aliastable persists user alias tables: entries chosen on the command
line are appended to a YAML or TOML file that the table providers read back.
*/
package aliastable

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// TableFileWriter appends entries to a YAML or TOML alias table file. New
// entries are appended as text, so comments and layout already in the file
// survive.
type TableFileWriter struct {
	filePath string
	reader   ports.AliasTableProvider
	encode   func([]alias.Entry) ([]byte, error)
}

// tomlDocument mirrors the document shape the TOML provider reads.
type tomlDocument struct {
	Alias []alias.Entry `toml:"alias"`
}

// NewTableFileWriter picks the format from the extension the same way
// predefinedaliases.NewProvider does, and reads the file back through it.
func NewTableFileWriter(filePath string) (ports.AliasTableWriter, error) {
	if filePath == "" {
		return nil, fmt.Errorf("alias table file path cannot be empty")
	}
	reader, err := predefinedaliases.NewProvider(filePath)
	if err != nil {
		return nil, err
	}
	encode := encodeYAMLEntries
	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		encode = encodeTOMLEntries
	}
	return &TableFileWriter{filePath: filePath, reader: reader, encode: encode}, nil
}

func (w *TableFileWriter) Destination() string {
	return w.filePath
}

// AddEntries skips names the file already declares and names repeated within
// entries, then appends the rest.
func (w *TableFileWriter) AddEntries(entries []alias.Entry) (int, error) {
	existing, err := w.reader.GetAliasTable()
	if err != nil {
		return 0, err
	}
	declared := make(map[string]bool, len(existing))
	for _, e := range existing {
		declared[e.Name] = true
	}

	var fresh []alias.Entry
	for _, e := range entries {
		if declared[e.Name] {
			continue
		}
		declared[e.Name] = true
		fresh = append(fresh, e)
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	data, err := w.encode(fresh)
	if err != nil {
		return 0, fmt.Errorf("failed to encode aliases for %s: %w", w.filePath, err)
	}
	if err := appendToFile(w.filePath, data); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func encodeYAMLEntries(entries []alias.Entry) ([]byte, error) {
	out := make([]alias.Entry, len(entries))
	for i, e := range entries {
		// The operation kind is the default and stays implicit in tables.
		if e.Kind == alias.KindOperation {
			e.Kind = ""
		}
		out[i] = e
	}
	return yaml.Marshal(out)
}

func encodeTOMLEntries(entries []alias.Entry) ([]byte, error) {
	out := tomlDocument{Alias: make([]alias.Entry, len(entries))}
	for i, e := range entries {
		if e.Kind == alias.KindOperation {
			e.Kind = ""
		}
		out.Alias[i] = e
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// appendToFile appends data on a fresh line, creating the file and its
// directory when needed.
func appendToFile(filePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}

	current, err := os.ReadFile(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read alias table %s: %w", filePath, err)
	}
	if len(current) > 0 && current[len(current)-1] != '\n' {
		data = append([]byte("\n"), data...)
	}

	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open alias table %s: %w", filePath, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write alias table %s: %w", filePath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close alias table %s: %w", filePath, err)
	}
	return nil
}
