package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'resolve' subcommand.
func NewResolveCommand(services func() *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Print the canonical name an alias resolves to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := services().Management.Describe(args[0])
			if err != nil {
				return err
			}
			if d.ResolveErr != nil {
				return fmt.Errorf("could not resolve %q: %w", args[0], d.ResolveErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", ui.AliasNameColor(strings.Join(d.Chain, " -> ")), d.Kind)
			return nil
		},
	}
}

// NewDescribeCommand creates the 'describe' subcommand.
func NewDescribeCommand(services func() *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Describe an alias or host name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := services().Management.Describe(args[0])
			if err != nil {
				return err
			}
			writeDescription(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func writeDescription(w io.Writer, d ports.Description) {
	field := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", ui.DetailColor(fmt.Sprintf("%-10s", label+":")), value)
	}

	field("Name", ui.AliasNameColor(d.Name))
	if d.Entry != nil {
		field("Alias of", d.Entry.Target)
	} else {
		field("Alias of", "(not an alias)")
	}
	field("Kind", string(d.Kind))
	if len(d.Chain) > 1 {
		field("Chain", strings.Join(d.Chain, " -> "))
	}
	if d.Entry != nil && d.Entry.Doc != "" {
		field("Doc", d.Entry.Doc)
	}

	switch {
	case d.Resolvable:
		field("Status", ui.SuccessColor("resolves to "+d.Canonical))
	case d.ResolveErr != nil:
		field("Status", ui.ErrorColor("unresolved: "+d.ResolveErr.Error()))
	default:
		field("Status", ui.ErrorColor("unresolved"))
	}
}
