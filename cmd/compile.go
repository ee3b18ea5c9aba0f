package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/logic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evalProgram bool

// compileCmd: proplogic compile <proposition>
var compileCmd = &cobra.Command{
	Use:   "compile <proposition>",
	Short: "Print the postfix program of a proposition",
	Long: `Print the postfix program a proposition compiles to, followed by its
variables in enumeration order.

With --eval the argument is taken as a postfix program instead, and its
truth table is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if evalProgram {
			return runProgram(cmd, args[0])
		}

		compiled, err := compileArg(cmd, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, compiled.Program.String())
		fmt.Fprintf(out, "variables: %s\n", strings.Join(compiled.Variables, " "))
		return nil
	},
}

func init() {
	compileCmd.Flags().BoolVar(&evalProgram, "eval", false, "Treat the argument as a postfix program and print its truth table")
}

func runProgram(cmd *cobra.Command, postfix string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	prog, err := logic.ParseProgram(postfix)
	if err != nil {
		return err
	}
	compiled := &logic.Compiled{
		Source:    postfix,
		Program:   prog,
		Variables: logic.Variables(postfix),
	}
	if err := logic.CheckVariableCount(len(compiled.Variables), config.MaxVariables); err != nil {
		return err
	}
	logger.Debug("Loaded program",
		zap.Int("instructions", len(prog.Instructions())),
		zap.Int("results", prog.NumResults()))

	var table *logic.Table
	err = runWithTimeout(ctx, func() error {
		var err error
		table, err = compiled.Table()
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTable(table))
	return nil
}
