package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gnolang/proplogic/check"
	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ignoreRules     string
	checkJsonOutput bool
	outPath         string
)

// checkCmd: proplogic check [paths...]
var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check that every proposition in the given files is valid",
	Long: `Check proposition files. Each non-blank line holds one proposition and
"//" starts a comment. Directories are walked for files with one of the
configured extensions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please provide file or directory paths")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine := check.NewEngine(config)
		if ignoreRules != "" {
			rules := strings.Split(ignoreRules, ",")
			for _, rule := range rules {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		return runCheckProcess(ctx, cmd.OutOrStdout(), engine, args, checkJsonOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCheckProcess(ctx context.Context, out io.Writer, engine check.Checker, paths []string, isJson bool, jsonOutput string) error {
	issues, err := check.ProcessFiles(ctx, logger, engine, paths, check.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		return err
	}

	if err := printIssues(out, issues, isJson, jsonOutput); err != nil {
		return err
	}

	if len(issues) > 0 {
		return errReported
	}
	return nil
}

func printIssues(out io.Writer, issues []tt.Issue, isJson bool, jsonOutput string) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJson {
		// text output
		for _, filename := range sortedFiles {
			fileIssues := issuesByFile[filename]
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			fmt.Fprintln(out, formatter.GenerateFormattedIssue(fileIssues, sourceCode))
		}
		return nil
	}

	// JSON output
	d, err := json.Marshal(issuesByFile)
	if err != nil {
		return fmt.Errorf("error marshalling issues to JSON: %w", err)
	}
	if jsonOutput == "" {
		fmt.Fprintln(out, string(d))
		return nil
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}
