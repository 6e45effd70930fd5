package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(services func() *Services) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List registered aliases.",
		Long:  `Lists aliases in registration order, optionally only those whose name starts with prefix.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, kind, services())
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only list aliases of this kind (operation or value).")
	return cmd
}

func runListCmd(cmd *cobra.Command, args []string, kindFlag string, svcs *Services) error {
	out := cmd.OutOrStdout()

	var prefix string
	if len(args) == 1 {
		prefix = args[0]
	}
	var kind alias.Kind
	if kindFlag != "" {
		parsed, err := alias.ParseKind(kindFlag)
		if err != nil {
			return fmt.Errorf("invalid --kind: %w", err)
		}
		kind = parsed
	}

	entries := svcs.Management.ListAliases(prefix, kind)
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases registered with prefix %q.", prefix)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (%s):", svcs.Report.Source)))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Target", "Kind", "Doc"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		table.Append([]string{e.Name, e.Target, string(e.EffectiveKind()), e.Doc})
	}
	table.Render()
	return nil
}
