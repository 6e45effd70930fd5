package predefinedaliases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTOMLProvider_GetAliasTable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []alias.Entry
		wantErr string
	}{
		{
			name: "entries in order",
			content: `
[[alias]]
alias = "string-split"
target = "split-string"
doc = "Split a string."

[[alias]]
alias = "column-fill"
target = "fill-column"
kind = "value"
`,
			want: []alias.Entry{
				{Name: "string-split", Target: "split-string", Doc: "Split a string."},
				{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
			},
		},
		{
			name:    "empty document",
			content: "# nothing\n",
			want:    []alias.Entry{},
		},
		{
			name: "unknown key",
			content: `
[[alias]]
alias = "string-split"
target = "split-string"
command = "nope"
`,
			wantErr: "unknown keys",
		},
		{
			name: "bad kind",
			content: `
[[alias]]
alias = "string-split"
target = "split-string"
kind = "macro"
`,
			wantErr: "unknown alias kind",
		},
		{
			name:    "syntax error",
			content: "[[alias]\n",
			wantErr: "failed to unmarshal alias table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewTOMLProvider(writeTable(t, "aliases.toml", tt.content))
			require.NoError(t, err)

			got, err := provider.GetAliasTable()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTOMLProvider_MissingFile(t *testing.T) {
	provider, err := NewTOMLProvider(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	got, err := provider.GetAliasTable()
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = NewTOMLProvider("")
	assert.Error(t, err)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		path string
		want any
	}{
		{"", &YAMLProvider{}},
		{"table.yaml", &YAMLProvider{filePath: "table.yaml"}},
		{"table.TOML", &TOMLProvider{filePath: "table.TOML"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := NewProvider(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
