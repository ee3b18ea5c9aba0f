package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gnolang/proplogic/logic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showCounterexample bool

// validCmd: proplogic valid <proposition>...
var validCmd = &cobra.Command{
	Use:   "valid <proposition>...",
	Short: "Report whether propositions are true under every assignment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		out := cmd.OutOrStdout()
		failed := false
		for _, text := range args {
			compiled, err := compileArg(cmd, text)
			if err != nil {
				if !errors.Is(err, errReported) {
					return err
				}
				failed = true
				continue
			}

			var (
				falsifier logic.Assignment
				falsified bool
			)
			err = runWithTimeout(ctx, func() error {
				var err error
				falsifier, falsified, err = compiled.Falsify()
				return err
			})
			if err != nil {
				logger.Error("Error checking validity", zap.String("proposition", text), zap.Error(err))
				return err
			}

			if !falsified {
				fmt.Fprintf(out, "%s: %s\n", text, color.GreenString("valid"))
				continue
			}
			failed = true
			fmt.Fprintf(out, "%s: %s\n", text, color.RedString("not valid"))
			if showCounterexample && len(compiled.Variables) > 0 {
				fmt.Fprintf(out, "  falsified by: %s\n", logic.FormatAssignment(compiled.Variables, falsifier))
			}
		}

		if failed {
			return errReported
		}
		return nil
	},
}

func init() {
	validCmd.Flags().BoolVarP(&showCounterexample, "counterexample", "c", false, "Print an assignment that falsifies each invalid proposition")
}
