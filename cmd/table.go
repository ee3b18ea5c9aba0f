package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/logic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tableCmd: proplogic table <proposition>
var tableCmd = &cobra.Command{
	Use:   "table <proposition>",
	Short: "Print the truth table of a proposition",
	Long: `Print the truth table of a proposition.

Several propositions separated by commas share one table, one output
column each. Rows are enumerated with the last variable changing fastest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable(cmd, args[0])
	},
}

func runTable(cmd *cobra.Command, text string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	compiled, err := compileArg(cmd, text)
	if err != nil {
		return err
	}

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

// compileArg compiles a proposition given on the command line. Syntax
// errors are printed with a caret under the offending token.
func compileArg(cmd *cobra.Command, text string) (*logic.Compiled, error) {
	compiled, err := logic.New(text)
	if err != nil {
		var se *logic.SyntaxError
		if errors.As(err, &se) {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatSyntaxError(se, ""))
			return nil, errReported
		}
		return nil, err
	}

	if err := logic.CheckVariableCount(len(compiled.Variables), config.MaxVariables); err != nil {
		return nil, fmt.Errorf("%w (raise max_variables in %s)", err, configPath())
	}

	logger.Debug("Compiled proposition",
		zap.String("program", compiled.Program.String()),
		zap.Strings("variables", compiled.Variables),
		zap.Int("results", compiled.Program.NumResults()))
	return compiled, nil
}

func configPath() string {
	if cfgFile == "" {
		return check.DefaultConfigPath
	}
	return cfgFile
}
