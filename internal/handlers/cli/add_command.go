package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type addCommandFlags struct {
	subject string
	limit   int
	noFZF   bool
}

func NewAddCommand(services func() *Services) *cobra.Command {
	var flags addCommandFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively add suggested aliases to the alias table file.",
		Long: `Shows alias suggestions and allows you to select which ones to append to
the table given by --table. Uses fzf for selection if available, otherwise
falls back to numeric input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, flags, services())
		},
	}

	cmd.Flags().StringVarP(&flags.subject, "subject", "s", "", "Only offer suggestions whose name starts with this subject.")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", defaultSuggestionLimit, "Maximum number of suggestions to offer; 0 offers all.")
	cmd.Flags().BoolVar(&flags.noFZF, "no-fzf", false, "Always use the numeric prompt.")

	return cmd
}

func runAddCmd(cmd *cobra.Command, flags addCommandFlags, svcs *Services) error {
	if svcs.Writer == nil {
		return ErrNoTableFile
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.InfoColor("Fetching alias suggestions..."))
	result, err := svcs.Suggestion.GetSuggestions(flags.subject, flags.limit)
	if err != nil {
		return fmt.Errorf("could not get suggestions: %w", err)
	}
	if len(result.Suggestions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No alias suggestions found to add with the current criteria."))
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d suggestions. (Source: %s)", len(result.Suggestions), ui.DetailColor(result.SourceDetails))))

	p := newPrompter(cmd.InOrStdin(), out, cmd.ErrOrStderr(), !flags.noFZF)
	selected, err := p.selectEntries(result.Suggestions)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be added."))
		return nil
	}

	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("\nYou have selected %d alias(es) to add.", len(selected))))
	return writeSelected(out, svcs, selected)
}
