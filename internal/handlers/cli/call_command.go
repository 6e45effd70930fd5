package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasreg/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewCallCommand creates the 'call' subcommand.
func NewCallCommand(services func() *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "call <name> [args...]",
		Short: "Call an operation through its alias or canonical name.",
		Long: `Calls the operation name resolves to. Numeric arguments are passed as
numbers; wrap an argument in double quotes to pass it as a string regardless.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services().Management.Invoke(args[0], parseArgs(args[1:])...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(result))
			return nil
		},
	}
}

// NewGetCommand creates the 'get' subcommand.
func NewGetCommand(services func() *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print the value of a cell through its alias or canonical name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := services().Management.ReadValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValue(v))
			return nil
		},
	}
}

// NewSetCommand creates the 'set' subcommand. The write lasts for this process only.
func NewSetCommand(services func() *Services) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Store a value in a cell and print it back through the same name.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services().Management
			if err := svc.WriteValue(args[0], parseArg(args[1])); err != nil {
				return err
			}
			v, err := svc.ReadValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", ui.AliasNameColor(args[0]), formatValue(v))
			return nil
		},
	}
}
