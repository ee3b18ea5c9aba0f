package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	ProgressOutput = io.Discard
	os.Exit(m.Run())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngine_RunSource(t *testing.T) {
	t.Parallel()
	src := `// laws of logic
A ∨ ¬A
  A → B    // not a tautology
(A ∧ B
T
F
`
	engine := NewEngine(DefaultConfig())
	issues, err := engine.RunSource("laws.logic", []byte(src))
	require.NoError(t, err)
	require.Len(t, issues, 3)

	assert.Equal(t, tt.RuleNotValid, issues[0].Rule)
	assert.Equal(t, "A → B", issues[0].Proposition)
	assert.Equal(t, "A=1 B=0", issues[0].Note)
	assert.Equal(t, 3, issues[0].Start.Line)
	assert.Equal(t, 3, issues[0].Start.Column)
	assert.Equal(t, 7, issues[0].End.Column)
	assert.Equal(t, tt.SeverityError, issues[0].Severity)

	assert.Equal(t, tt.RuleSyntaxError, issues[1].Rule)
	assert.Equal(t, 4, issues[1].Start.Line)
	assert.Equal(t, 7, issues[1].Start.Column)
	assert.Equal(t, issues[1].Start, issues[1].End)
	assert.Equal(t, `unexpected end of input, expected ")"`, issues[1].Message)

	assert.Equal(t, tt.RuleNotValid, issues[2].Rule)
	assert.Equal(t, "F", issues[2].Proposition)
	assert.Empty(t, issues[2].Note)
}

func TestEngine_IgnoreRule(t *testing.T) {
	t.Parallel()
	engine := NewEngine(DefaultConfig())
	engine.IgnoreRule(tt.RuleNotValid)

	issues, err := engine.RunSource("x.logic", []byte("A\n(B\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.RuleSyntaxError, issues[0].Rule)
}

func TestEngine_Nolint(t *testing.T) {
	t.Parallel()
	src := `A → B   //nolint:not-valid
//nolint
(A
A ∧ B   //nolint:syntax-error
`
	engine := NewEngine(DefaultConfig())
	issues, err := engine.RunSource("x.logic", []byte(src))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.RuleNotValid, issues[0].Rule)
	assert.Equal(t, 4, issues[0].Start.Line)
}

func TestEngine_SeverityOff(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	config.Rules[tt.RuleSyntaxError] = tt.ConfigRule{Severity: tt.SeverityOff}
	engine := NewEngine(config)

	issues, err := engine.RunSource("x.logic", []byte("(B\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngine_TooManyVariables(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()
	config.MaxVariables = 2
	engine := NewEngine(config)

	issues, err := engine.RunSource("x.logic", []byte("A ∨ B ∨ C\nA ∨ ¬A\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.RuleTooManyVariables, issues[0].Rule)
	assert.Equal(t, tt.SeverityWarning, issues[0].Severity)
}

func TestEngine_Accepts(t *testing.T) {
	t.Parallel()
	engine := NewEngine(DefaultConfig())
	assert.True(t, engine.Accepts("a/b.logic"))
	assert.True(t, engine.Accepts("b.prop"))
	assert.False(t, engine.Accepts("b.go"))
}

func TestProcessPath_Directory(t *testing.T) {
	t.Parallel()
	logger, _ := zap.NewProduction()
	tempDir := t.TempDir()

	for i := 0; i < 5; i++ {
		content := ""
		for j := 0; j <= i; j++ {
			content += fmt.Sprintf("A%d ∧ B\n", j)
		}
		writeFile(t, tempDir, fmt.Sprintf("test%d.logic", i), content)
	}
	writeFile(t, tempDir, "ignored.txt", "A ∧ B\n")

	engine := NewEngine(DefaultConfig())
	issues, err := ProcessPath(context.Background(), logger, engine, tempDir, ProcessFile)
	require.NoError(t, err)

	// 1 + 2 + 3 + 4 + 5 statements, all syntax errors on the digit
	require.Len(t, issues, 15)
	for i := 1; i < len(issues); i++ {
		assert.LessOrEqual(t, issues[i-1].Filename, issues[i].Filename, "issues are ordered by file")
	}
}

func TestProcessPath_SingleFile(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	valid := writeFile(t, tempDir, "valid.logic", "A ∨ ¬A\n¬(A∧B) ⇔ ¬A∨¬B\n")
	other := writeFile(t, tempDir, "notes.md", "A\n")

	engine := NewEngine(DefaultConfig())

	issues, err := ProcessPath(context.Background(), nil, engine, valid, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)

	// named files are checked whatever their extension
	issues, err = ProcessPath(context.Background(), nil, engine, other, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.RuleNotValid, issues[0].Rule)

	_, err = ProcessPath(context.Background(), nil, engine, filepath.Join(tempDir, "missing.logic"), ProcessFile)
	assert.Error(t, err)
}

func TestProcessPath_FileFailures(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	good := writeFile(t, tempDir, "a.logic", "A\n")
	broken := writeFile(t, tempDir, "b.logic", "B\n")

	engine := NewEngine(DefaultConfig())
	errUnreadable := errors.New("unreadable")
	processor := func(c Checker, path string) ([]tt.Issue, error) {
		if path == broken {
			return nil, errUnreadable
		}
		return ProcessFile(c, path)
	}

	issues, err := ProcessPath(context.Background(), nil, engine, tempDir, processor)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnreadable)
	assert.Contains(t, err.Error(), "1 of 2 files")
	require.Len(t, issues, 1)
	assert.Equal(t, good, issues[0].Filename)

	issues, err = ProcessFiles(context.Background(), nil, engine, []string{tempDir}, processor)
	assert.ErrorIs(t, err, errUnreadable)
	assert.Len(t, issues, 1)
}

func TestProcessPath_Cancelled(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, tempDir, fmt.Sprintf("test%d.logic", i), "A\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(DefaultConfig())
	issues, err := ProcessPath(ctx, nil, engine, tempDir, ProcessFile)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, issues)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	a := writeFile(t, tempDir, "a.logic", "A\n")
	b := writeFile(t, tempDir, "b.logic", "B ∨ ¬B\nC ∧ D\n")

	engine := NewEngine(DefaultConfig())
	issues, err := ProcessFiles(context.Background(), nil, engine, []string{a, b}, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, a, issues[0].Filename)
	assert.Equal(t, b, issues[1].Filename)
	assert.Equal(t, "C=0 D=0", issues[1].Note)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	engine := NewEngine(DefaultConfig())
	issues, err := ProcessSources(context.Background(), nil, engine, [][]byte{
		[]byte("A ∨ ¬A"),
		[]byte("A ∧ ¬A"),
	})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "<source 1>", issues[0].Filename)
}
