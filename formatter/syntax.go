package formatter

import (
	"go/token"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/proplogic/internal"
	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/gnolang/proplogic/logic"
)

// DefaultInputName labels propositions that do not come from a file.
const DefaultInputName = "<input>"

// SyntaxIssue converts a syntax error into an issue located in its own
// input text, which may span several lines.
func SyntaxIssue(err *logic.SyntaxError, filename string) tt.Issue {
	if filename == "" {
		filename = DefaultInputName
	}

	before := err.Input[:err.Offset]
	line := strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	pos := token.Position{
		Filename: filename,
		Offset:   err.Offset,
		Line:     line,
		Column:   utf8.RuneCountInString(before) + 1,
	}

	return tt.Issue{
		Rule:        tt.RuleSyntaxError,
		Filename:    filename,
		Proposition: err.Input,
		Message:     err.Message(),
		Severity:    tt.SeverityError,
		Start:       pos,
		End:         pos,
	}
}

// FormatSyntaxError renders a syntax error with the offending line and a
// caret under the token the parser rejected.
func FormatSyntaxError(err *logic.SyntaxError, filename string) string {
	issue := SyntaxIssue(err, filename)
	return GenerateFormattedIssue([]tt.Issue{issue}, internal.NewSourceCode(err.Input))
}
