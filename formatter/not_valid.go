package formatter

// NotValidFormatter renders propositions that are not tautologies. The
// issue note holds the falsifying assignment.
type NotValidFormatter struct{}

func (f *NotValidFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{- snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .Padding}}
{{- underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines}}
{{- counterexample .Note .Padding}}
`
}

func counterexample(assignment string, padding string) string {
	if assignment == "" {
		return ""
	}
	return lineStyle.Sprintf("%s= ", padding) + noteStyle.Sprint("falsified by: ") + variableStyle.Sprint(assignment) + "\n"
}
