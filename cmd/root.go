package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gnolang/proplogic/check"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool
	noColor bool

	config check.Config
	logger *zap.Logger
)

// errReported is returned by commands that already printed why they
// failed; Execute only turns it into a non-zero exit status.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:              "proplogic [proposition]",
	Short:            "proplogic - truth tables and validity checks for propositional logic",
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	SilenceErrors:    true,
	Args:             cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		config = check.DefaultConfig()
		if cmd == initCmd {
			// init creates the file, it must not need one
			return nil
		}
		config, err = check.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		color.NoColor = color.NoColor || noColor || !config.Color

		logger.Debug("Configuration loaded",
			zap.String("name", config.Name),
			zap.Int("max_variables", config.MaxVariables))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'proplogic' is entered
			return cmd.Help()
		}
		// Format: proplogic <proposition> => behaves like the table subcommand
		return runTable(cmd, args[0])
	},
}

// Execute runs the command line and returns the error that should make the
// process exit with a failure status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), color.RedString("error:"), err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file (default "+check.DefaultConfigPath+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Give up after this long")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(validCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(initCmd)
}

// runWithTimeout runs f and gives up when ctx is done. f keeps running in
// the background after a timeout; the process is about to exit anyway.
func runWithTimeout(ctx context.Context, f func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- f()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("gave up after %s: %w", timeout, ctx.Err())
	case err := <-done:
		return err
	}
}
