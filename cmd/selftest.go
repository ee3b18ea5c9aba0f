package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gnolang/proplogic/logic"
	"github.com/spf13/cobra"
)

// selftestCmd: proplogic selftest
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the built-in laws of propositional logic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := logic.SelfTest()
		for _, f := range failures {
			if f.Err != nil {
				fmt.Fprintf(out, "%s %d: %s: %v\n", color.RedString("FAIL"), f.Statement.Line, f.Statement.Text, f.Err)
				continue
			}
			fmt.Fprintf(out, "%s %d: %s: not valid\n", color.RedString("FAIL"), f.Statement.Line, f.Statement.Text)
		}

		total := len(logic.Laws())
		if len(failures) > 0 {
			fmt.Fprintf(out, "%d of %d laws failed\n", len(failures), total)
			return errReported
		}
		fmt.Fprintf(out, "%s %d laws hold\n", color.GreenString("ok"), total)
		return nil
	},
}
