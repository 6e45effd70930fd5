package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/spf13/cobra"
)

// Options are the settings the persistent flags can override.
type Options struct {
	Table string
	Host  string
}

// Services is everything the subcommands work with. It is built once per
// invocation, after flags are parsed.
type Services struct {
	Management ports.AliasManagementService
	Suggestion ports.AliasSuggestionService
	// Report describes the table load that populated the registry.
	Report ports.LoadReport
	// Writer is nil when no alias table file is configured.
	Writer ports.AliasTableWriter
	// Builtin is the table shipped with the binary.
	Builtin ports.AliasTableProvider
}

// Builder wires Services for the given options.
type Builder func(opts Options) (*Services, error)

func NewRootCommand(version string, defaults Options, build Builder) *cobra.Command {
	opts := defaults
	var app *Services

	rootCmd := &cobra.Command{
		Use:   "aliasreg",
		Short: "aliasreg gives host primitives subject-prefix names.",
		Long: `aliasreg loads an alias table into a registry so that names such as
string-split can be used in place of split-string. Aliases are interchangeable
with their targets: operation aliases call the same primitive, value aliases
read and write the same cell.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if build == nil {
				return fmt.Errorf("no service builder configured for command %s", cmd.Name())
			}
			svcs, err := build(opts)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			app = svcs
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Table, "table", defaults.Table, "Alias table file (.yaml or .toml); the built-in table when empty.")
	rootCmd.PersistentFlags().StringVar(&opts.Host, "host", defaults.Host, "Host environment aliases resolve into: native or lisp.")

	services := func() *Services { return app }

	rootCmd.AddCommand(NewListCommand(services))
	rootCmd.AddCommand(NewResolveCommand(services))
	rootCmd.AddCommand(NewDescribeCommand(services))
	rootCmd.AddCommand(NewCallCommand(services))
	rootCmd.AddCommand(NewGetCommand(services))
	rootCmd.AddCommand(NewSetCommand(services))
	rootCmd.AddCommand(NewCheckCommand(services))
	rootCmd.AddCommand(NewSuggestCommand(services))
	rootCmd.AddCommand(NewAddCommand(services))
	rootCmd.AddCommand(NewAddPredefinedCommand(services))

	return rootCmd
}
