package cli

import (
	"fmt"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
	"github.com/AntonioJCosta/ignorestat/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewLintersCommand creates the 'linters' subcommand.
func NewLintersCommand(grammarSelector ports.GrammarSelector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linters",
		Short: "List the supported linters and their suppression patterns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLintersCmd(cmd, args, grammarSelector)
		},
	}
	return cmd
}

func runLintersCmd(cmd *cobra.Command, _ []string, grammarSelector ports.GrammarSelector) error {
	grammars := grammarSelector.Supported()
	if len(grammars) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("No linters are supported by this build."))
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), ui.HeaderColor("Supported linters:"))

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Linter", "Pattern"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, g := range grammars {
		table.Append([]string{g.Linter.String(), g.Pattern()})
	}
	table.Render()
	return nil
}
