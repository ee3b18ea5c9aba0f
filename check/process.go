package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Checker is the part of Engine the processing functions depend on.
type Checker interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(filename string, source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	Accepts(path string) bool
}

var _ Checker = (*Engine)(nil)

// ProgressOutput receives the progress bar of directory walks. Set it to
// io.Discard to silence it.
var ProgressOutput io.Writer = os.Stderr

// ProcessFile checks one file.
func ProcessFile(engine Checker, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSources checks in-memory sources, named "<source N>".
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Checker,
	sources [][]byte,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := engine.RunSource(fmt.Sprintf("<source %d>", i), source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessFiles checks every path in order. Directories are walked.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Checker,
	paths []string,
	processor func(Checker, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		allIssues = append(allIssues, issues...)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allIssues, err
		}
	}

	return allIssues, nil
}

// ProcessPath checks a file, or every accepted file below a directory. A
// file named directly is checked whatever its extension; the extension
// filter only applies to directory walks.
//
// Files of a directory are checked by a bounded pool of workers; issues are
// returned in file name order. Files that could not be checked are reported
// together in the returned error, after the issues of the others. On
// cancellation the issues found so far are returned with the context error.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Checker,
	path string,
	processor func(Checker, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !engine.Accepts(path) && logger != nil {
			logger.Debug("Checking file with unlisted extension", zap.String("path", path))
		}
		return processor(engine, path)
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && engine.Accepts(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ProgressOutput),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// one slot per file keeps the output order independent of scheduling
	results := make([][]tt.Issue, len(files))
	failures := make([]error, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	cancelled := false
	for i, filePath := range files {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
		case sem <- struct{}{}:
		}
		if cancelled {
			break
		}

		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			fileIssues, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				failures[i] = err
			} else {
				results[i] = fileIssues
			}
			_ = bar.Add(1)
		}(i, filePath)
	}
	wg.Wait()
	_ = bar.Finish()

	issues := make([]tt.Issue, 0)
	for _, r := range results {
		issues = append(issues, r...)
	}

	if cancelled {
		return issues, ctx.Err()
	}

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return issues, fmt.Errorf("%d of %d files in %s could not be checked: %w",
			failed, len(files), path, errors.Join(failures...))
	}
	return issues, nil
}
