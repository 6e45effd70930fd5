package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddPredefinedCommand creates the command that copies built-in aliases into the table file.
func NewAddPredefinedCommand(services func() *Services) *cobra.Command {
	var yes, noFZF bool

	cmd := &cobra.Command{
		Use:   "add-predefined",
		Short: "Interactively copy built-in aliases into the alias table file.",
		Long: `Reads the alias table shipped with aliasreg, drops the entries the table
file given by --table already declares, lets you select from the rest and
appends the selection to the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddPredefinedCmd(cmd, services(), yes, noFZF)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Add every available built-in alias without prompting.")
	cmd.Flags().BoolVar(&noFZF, "no-fzf", false, "Always use the numeric prompt.")
	return cmd
}

func runAddPredefinedCmd(cmd *cobra.Command, svcs *Services, yes, noFZF bool) error {
	if svcs.Writer == nil {
		return ErrNoTableFile
	}
	if svcs.Builtin == nil {
		return fmt.Errorf("built-in alias table is not available")
	}
	out := cmd.OutOrStdout()

	available, total, err := fetchAvailablePredefined(svcs)
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Fprintln(out, ui.InfoColor("No built-in aliases found."))
		return nil
	}
	if len(available) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("All %d built-in aliases are already declared in %s.", total, svcs.Writer.Destination())))
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d built-in aliases. %d are not yet in %s.", total, len(available), svcs.Writer.Destination())))

	if yes {
		return writeSelected(out, svcs, available)
	}

	p := newPrompter(cmd.InOrStdin(), out, cmd.ErrOrStderr(), !noFZF)
	selected, err := p.selectEntries(available)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be added."))
		return nil
	}

	ok, err := p.confirm(fmt.Sprintf("\nDo you want to add these %d selected aliases?", len(selected)))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, ui.InfoColor("Aborted. No aliases were added."))
		return nil
	}
	return writeSelected(out, svcs, selected)
}
