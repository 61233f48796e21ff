package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/flex/internal/checks"
)

var checkNameStyle = color.New(color.FgCyan, color.Bold)

// checksCmd: flex checks
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the checks rules can use",
	Long: `List the checks rules can use in their "checks" list.
Prefix a check with "!" to negate it.`,
	Run: func(cmd *cobra.Command, args []string) {
		printChecks(cmd.OutOrStdout(), checks.All())
	},
}

func printChecks(w io.Writer, all []checks.Check) {
	width := 0
	for _, c := range all {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	for _, c := range all {
		fmt.Fprintf(w, "%s  %s\n", checkNameStyle.Sprintf("%-*s", width, c.Name), c.Description)
	}
}
