package logic

import (
	_ "embed"
	"strings"
)

// Statement is one proposition read from a proposition file.
type Statement struct {
	Line   int    // 1-based line number
	Column int    // 1-based byte column where Text starts
	Text   string // proposition without comment and surrounding blanks
}

// ParseStatements splits a proposition file into statements. Each line
// holds at most one statement; "//" starts a comment that runs to the end
// of the line, and blank lines are skipped.
func ParseStatements(src string) []Statement {
	var stmts []Statement
	for i, line := range strings.Split(src, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimRight(line, " \t\r")
		text := strings.TrimLeft(line, " \t")
		if text == "" {
			continue
		}
		stmts = append(stmts, Statement{
			Line:   i + 1,
			Column: len(line) - len(text) + 1,
			Text:   text,
		})
	}
	return stmts
}

//go:embed laws.txt
var laws string

// Laws returns the built-in regression corpus: the usual laws of
// propositional logic, each written as an equivalence that must be valid.
func Laws() []Statement {
	return ParseStatements(laws)
}

// LawFailure describes a law that did not hold.
type LawFailure struct {
	Statement Statement
	Err       error // nil when the law compiled but is not valid
}

// SelfTest checks every law of the built-in corpus and returns the ones
// that fail. An empty result means the compiler and evaluator agree with
// the laws.
func SelfTest() []LawFailure {
	var failures []LawFailure
	for _, stmt := range Laws() {
		ok, err := Valid(stmt.Text)
		if err != nil || !ok {
			failures = append(failures, LawFailure{Statement: stmt, Err: err})
		}
	}
	return failures
}
