package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const defaultSuggestionLimit = 20

// NewSuggestCommand creates the 'suggest' subcommand, also reachable as 'show'.
func NewSuggestCommand(services func() *Services) *cobra.Command {
	var subject string
	var limit int

	cmd := &cobra.Command{
		Use:     "suggest",
		Aliases: []string{"show"},
		Short:   "Suggest subject-prefix aliases for host operations that have none.",
		Long: `Looks at every operation the host defines, skips those an alias already
points at, and proposes a subject-first name for the rest, e.g. buffer-kill
for kill-buffer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd(cmd, subject, limit, services())
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only show suggestions whose name starts with this subject (e.g. buffer-).")
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultSuggestionLimit, "Maximum number of suggestions to show; 0 shows all.")

	return cmd
}

func runShowCmd(cmd *cobra.Command, subject string, limit int, svcs *Services) error {
	out := cmd.OutOrStdout()

	result, err := svcs.Suggestion.GetSuggestions(subject, limit)
	if err != nil {
		return fmt.Errorf("could not get suggestions: %w", err)
	}

	if len(result.Suggestions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No alias suggestions found with the current criteria."))
		if result.SourceDetails != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		}
		return nil
	}

	fmt.Fprintln(out, ui.InfoColor("Suggested Aliases:"))
	for _, s := range result.Suggestions {
		fmt.Fprintf(out, "  %s %s %s\n",
			ui.AliasNameColor(s.Name),
			ui.AliasArrowColor("->"),
			ui.AliasTargetColor(s.Target))
	}
	if result.SourceDetails != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Source: %s)", result.SourceDetails)))
	}
	return nil
}
