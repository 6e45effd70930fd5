package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned by 'check --strict' when the table has problems.
var ErrCheckFailed = errors.New("alias table has rejected or unresolved entries")

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(services func() *Services) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report rejected table entries and aliases whose targets do not resolve.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd.OutOrStdout(), services(), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any entry is rejected or unresolved.")
	return cmd
}

func runCheckCmd(out io.Writer, svcs *Services, strict bool) error {
	report := svcs.Report
	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Loaded %d of %d aliases from %s.", report.Registered, report.Total, report.Source)))
	if report.Replaced > 0 {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("%d entries replaced an earlier entry with the same name.", report.Replaced)))
	}

	if len(report.Rejected) > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("\n%d rejected:", len(report.Rejected))))
		table := newProblemTable(out)
		for _, r := range report.Rejected {
			table.Append([]string{r.Entry.Name, r.Entry.Target, string(r.Entry.EffectiveKind()), r.Err.Error()})
		}
		table.Render()
	}

	unresolved := findUnresolved(svcs.Management)
	if len(unresolved) > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("\n%d unresolved:", len(unresolved))))
		table := newProblemTable(out)
		for _, d := range unresolved {
			table.Append([]string{d.Name, d.Entry.Target, string(d.Kind), d.ResolveErr.Error()})
		}
		table.Render()
	}

	if len(report.Rejected) == 0 && len(unresolved) == 0 {
		fmt.Fprintln(out, ui.SuccessColor("Every alias resolves."))
		return nil
	}
	if strict {
		return ErrCheckFailed
	}
	return nil
}

// findUnresolved describes every registered alias and keeps those that do not resolve.
func findUnresolved(svc ports.AliasManagementService) []ports.Description {
	var out []ports.Description
	for _, e := range svc.ListAliases("", "") {
		d, err := svc.Describe(e.Name)
		if err != nil || d.Resolvable || d.Entry == nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

func newProblemTable(out io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Target", "Kind", "Reason"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	return table
}
