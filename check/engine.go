package check

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/proplogic/formatter"
	"github.com/gnolang/proplogic/internal"
	"github.com/gnolang/proplogic/internal/nolint"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/gnolang/proplogic/logic"
)

// Engine checks proposition files: every statement must compile and be
// valid.
type Engine struct {
	config       Config
	ignoredRules map[string]bool
	extensions   map[string]bool
}

// NewEngine creates an engine. Rules whose severity is OFF are ignored.
func NewEngine(config Config) *Engine {
	e := &Engine{
		config:       config,
		ignoredRules: make(map[string]bool),
		extensions:   make(map[string]bool),
	}
	for name, rule := range config.Rules {
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(name)
		}
	}
	for _, ext := range config.Extensions {
		e.extensions[ext] = true
	}
	return e
}

// IgnoreRule suppresses every issue reported under rule.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// Accepts reports whether path has one of the configured extensions.
func (e *Engine) Accepts(path string) bool {
	return e.extensions[filepath.Ext(path)]
}

// Run checks the proposition file at filename.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	source, err := internal.ReadSourceCode(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return e.check(filename, source)
}

// RunSource checks in-memory proposition text reported under filename.
func (e *Engine) RunSource(filename string, source []byte) ([]tt.Issue, error) {
	return e.check(filename, internal.NewSourceCode(string(source)))
}

func (e *Engine) check(filename string, source *internal.SourceCode) ([]tt.Issue, error) {
	text := strings.Join(source.Lines, "\n")
	nolints := nolint.ParseComments(filename, text)

	var issues []tt.Issue
	for _, stmt := range logic.ParseStatements(text) {
		issue, err := e.checkStatement(filename, source.Lines[stmt.Line-1], stmt)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, stmt.Line, err)
		}
		if issue == nil || e.ignoredRules[issue.Rule] {
			continue
		}
		if nolints.IsNolint(issue.Start, issue.Rule) {
			continue
		}
		issues = append(issues, *issue)
	}
	return issues, nil
}

// checkStatement returns nil when stmt is a valid proposition. Errors are
// internal failures, never problems with the proposition itself.
func (e *Engine) checkStatement(filename, line string, stmt logic.Statement) (*tt.Issue, error) {
	startColumn := utf8.RuneCountInString(line[:stmt.Column-1]) + 1
	endColumn := startColumn + utf8.RuneCountInString(stmt.Text) - 1

	issue := &tt.Issue{
		Filename:    filename,
		Proposition: stmt.Text,
		Start:       token.Position{Filename: filename, Line: stmt.Line, Column: startColumn},
		End:         token.Position{Filename: filename, Line: stmt.Line, Column: endColumn},
	}

	compiled, err := logic.New(stmt.Text)
	if err != nil {
		var se *logic.SyntaxError
		if !errors.As(err, &se) {
			return nil, err
		}
		syn := formatter.SyntaxIssue(se, filename)
		issue.Rule = tt.RuleSyntaxError
		issue.Message = syn.Message
		issue.Start.Column = startColumn + syn.Start.Column - 1
		issue.End = issue.Start
		issue.Severity = e.severity(issue.Rule)
		return issue, nil
	}

	if err := logic.CheckVariableCount(len(compiled.Variables), e.config.MaxVariables); err != nil {
		issue.Rule = tt.RuleTooManyVariables
		issue.Message = err.Error()
		issue.Severity = e.severity(issue.Rule)
		return issue, nil
	}

	falsifier, falsified, err := compiled.Falsify()
	if err != nil {
		return nil, err
	}
	if !falsified {
		return nil, nil
	}

	issue.Rule = tt.RuleNotValid
	issue.Message = "proposition is not valid"
	issue.Note = logic.FormatAssignment(compiled.Variables, falsifier)
	if len(compiled.Variables) == 0 {
		issue.Note = ""
	}
	issue.Severity = e.severity(issue.Rule)
	return issue, nil
}

func (e *Engine) severity(rule string) tt.Severity {
	if r, ok := e.config.Rules[rule]; ok {
		return r.Severity
	}
	return tt.SeverityError
}
