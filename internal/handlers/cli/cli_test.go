package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/aliasreg/internal/adapters/aliasgeneration"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/nameanalysis"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/nativehost"
	"github.com/AntonioJCosta/aliasreg/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliasregistry"
	"github.com/AntonioJCosta/aliasreg/internal/core/services/aliassuggestion"
	"github.com/AntonioJCosta/aliasreg/internal/core/testutil"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasreg/internal/repositories/aliastable"
)

var testTable = []alias.Entry{
	{Name: "string-split", Target: "split-string", Doc: "Split a string into substrings."},
	{Name: "string-sub", Target: "substring"},
	{Name: "column-fill", Target: "fill-column", Kind: alias.KindValue},
	{Name: "window-select", Target: "select-window"},
	{Name: "quit-inhibit", Target: "inhibit-quit", Kind: alias.KindValue},
}

func TestMain(m *testing.M) {
	ui.Disable()
	os.Exit(m.Run())
}

// testBuilder wires the real services over a native host and testTable.
// A table option enables the writer, as it does in the binary.
func testBuilder(t *testing.T) Builder {
	t.Helper()
	return func(opts Options) (*Services, error) {
		host := nativehost.New(nil)
		registry := aliasregistry.New(host)
		provider := &testutil.MockAliasTableProvider{
			GetAliasTableFunc:    func() ([]alias.Entry, error) { return testTable, nil },
			SourceIdentifierFunc: func() string { return "test table" },
		}
		management := aliasmanagement.NewService(registry, provider)
		report, err := management.LoadTable()
		if err != nil {
			return nil, err
		}
		builtin, err := predefinedaliases.NewYAMLProvider()
		if err != nil {
			return nil, err
		}

		svcs := &Services{
			Management: management,
			Suggestion: aliassuggestion.NewService(host, registry, aliasgeneration.NewAliasGenerator(nameanalysis.NewBasicAnalyzer())),
			Report:     report,
			Builtin:    builtin,
		}
		if opts.Table != "" {
			if svcs.Writer, err = aliastable.NewTableFileWriter(opts.Table); err != nil {
				return nil, err
			}
		}
		return svcs, nil
	}
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test", Options{Host: "native"}, testBuilder(t))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_BuilderFailure(t *testing.T) {
	root := NewRootCommand("test", Options{}, func(Options) (*Services, error) {
		return nil, errors.New("no host")
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"list"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize: no host")
}

func TestRootCommand_FlagsReachBuilder(t *testing.T) {
	var got Options
	root := NewRootCommand("test", Options{Host: "native"}, func(opts Options) (*Services, error) {
		got = opts
		return nil, errors.New("stop")
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--host", "lisp", "--table", "t.toml", "list"})
	_ = root.Execute()

	assert.Equal(t, Options{Host: "lisp", Table: "t.toml"}, got)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	for _, want := range []string{"string-split", "split-string", "column-fill", "window-select", "test table"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "quit-inhibit", "rejected entries are not registered")

	out, err = execute(t, "", "list", "string-")
	require.NoError(t, err)
	assert.Contains(t, out, "string-sub")
	assert.NotContains(t, out, "column-fill")

	out, err = execute(t, "", "list", "--kind", "value")
	require.NoError(t, err)
	assert.Contains(t, out, "column-fill")
	assert.NotContains(t, out, "string-split")

	out, err = execute(t, "", "list", "frame-")
	require.NoError(t, err)
	assert.Contains(t, out, `No aliases registered with prefix "frame-".`)

	_, err = execute(t, "", "list", "--kind", "macro")
	assert.Error(t, err)
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "", "resolve", "string-split")
	require.NoError(t, err)
	assert.Equal(t, "string-split -> split-string (operation)\n", out)

	out, err = execute(t, "", "resolve", "upcase")
	require.NoError(t, err)
	assert.Equal(t, "upcase (operation)\n", out)

	_, err = execute(t, "", "resolve", "window-select")
	assert.ErrorIs(t, err, alias.ErrNotFound)
}

func TestDescribeCommand(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	tests := []struct {
		golden string
		name   string
	}{
		{"describe-alias", "string-split"},
		{"describe-dangling", "window-select"},
		{"describe-canonical-value", "fill-column"},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			out, err := execute(t, "", "describe", tt.name)
			require.NoError(t, err)
			g.Assert(t, tt.golden, []byte(out))
		})
	}

	_, err := execute(t, "", "describe", "two words")
	assert.ErrorIs(t, err, alias.ErrInvalidName)
}

func TestCallAndValueCommands(t *testing.T) {
	out, err := execute(t, "", "call", "string-split", "a,b,c", ",")
	require.NoError(t, err)
	assert.Equal(t, "(\"a\" \"b\" \"c\")\n", out)

	out, err = execute(t, "", "call", "string-sub", "hello", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "\"el\"\n", out)

	out, err = execute(t, "", "call", "split-string", "x y")
	require.NoError(t, err)
	assert.Equal(t, "(\"x\" \"y\")\n", out, "canonical names work too")

	_, err = execute(t, "", "call", "window-select")
	assert.ErrorIs(t, err, alias.ErrNotFound)

	out, err = execute(t, "", "get", "column-fill")
	require.NoError(t, err)
	assert.Equal(t, "70\n", out)

	out, err = execute(t, "", "set", "column-fill", "80")
	require.NoError(t, err)
	assert.Equal(t, "column-fill = 80\n", out)

	_, err = execute(t, "", "get", "no-such-var")
	assert.ErrorIs(t, err, alias.ErrNotFound)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 4 of 5 aliases from test table.")
	assert.Contains(t, out, "1 rejected:")
	assert.Contains(t, out, "quit-inhibit")
	assert.Contains(t, out, "1 unresolved:")
	assert.Contains(t, out, "select-window")

	_, err = execute(t, "", "check", "--strict")
	assert.ErrorIs(t, err, ErrCheckFailed)
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "", "suggest", "--subject", "buffer-k")
	require.NoError(t, err)
	assert.Contains(t, out, "buffer-kill -> kill-buffer")

	out, err = execute(t, "", "show", "--subject", "string-sp")
	require.NoError(t, err)
	assert.Contains(t, out, "No alias suggestions found", "split-string already has an alias")

	_, err = execute(t, "", "suggest", "--limit", "-1")
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	_, err := execute(t, "", "add", "--no-fzf")
	assert.ErrorIs(t, err, ErrNoTableFile)

	path := filepath.Join(t.TempDir(), "aliases.yaml")
	out, err := execute(t, "1\n", "--table", path, "add", "--no-fzf", "--subject", "buffer-k")
	require.NoError(t, err)
	assert.Contains(t, out, "1 alias(es) written to "+path)

	provider, err := predefinedaliases.NewYAMLFileProvider(path)
	require.NoError(t, err)
	entries, err := provider.GetAliasTable()
	require.NoError(t, err)
	assert.Equal(t, []alias.Entry{{Name: "buffer-kill", Target: "kill-buffer"}}, entries)

	out, err = execute(t, "none\n", "--table", path, "add", "--no-fzf", "--subject", "buffer-k")
	require.NoError(t, err)
	assert.Contains(t, out, "No aliases were selected")
}

func TestAddPredefinedCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")

	out, err := execute(t, "1\nno\n", "--table", path, "add-predefined", "--no-fzf")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted. No aliases were added.")
	assert.NoFileExists(t, path)

	out, err = execute(t, "1-2\ny\n", "--table", path, "add-predefined", "--no-fzf")
	require.NoError(t, err)
	assert.Contains(t, out, "2 alias(es) written to "+path)

	out, err = execute(t, "", "--table", path, "add-predefined", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "alias(es) written to "+path)

	provider, err := predefinedaliases.NewTOMLProvider(path)
	require.NoError(t, err)
	written, err := provider.GetAliasTable()
	require.NoError(t, err)
	builtinProvider, _ := predefinedaliases.NewYAMLProvider()
	builtin, _ := builtinProvider.GetAliasTable()
	// string-split, string-sub and friends come from the test table, which the
	// builder registers, so they are never offered.
	assert.Less(t, len(written), len(builtin))
	assert.NotEmpty(t, written)
}
