package nolint

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/gnolang/proplogic/logic"
)

const nolintPrefix = "//nolint"

// Manager manages nolint scopes and checks if a position is nolinted.
type Manager struct {
	// scopes maps filename to a slice of nolint scopes.
	scopes map[string][]nolintScope
}

// nolintScope represents a range of lines where nolint applies.
type nolintScope struct {
	rules map[string]struct{}
	start token.Position
	end   token.Position
}

// ParseComments parses the nolint comments of a proposition file and
// returns a Manager.
//
// A comment after a proposition applies to that line. A comment on a line
// of its own applies to the proposition on the next line. When nothing
// follows it and it comes before the first proposition, it applies to the
// whole file.
func ParseComments(filename, src string) *Manager {
	lines := strings.Split(src, "\n")
	manager := Manager{
		scopes: make(map[string][]nolintScope),
	}

	stmtLines := make(map[int]bool)
	firstStmt := len(lines) + 1
	for _, stmt := range logic.ParseStatements(src) {
		stmtLines[stmt.Line] = true
		firstStmt = min(firstStmt, stmt.Line)
	}

	for i, line := range lines {
		idx := strings.Index(line, "//")
		if idx < 0 {
			continue
		}
		pos := token.Position{Filename: filename, Line: i + 1, Column: idx + 1}
		ns, err := parseComment(strings.TrimRight(line[idx:], " \t\r"), pos, stmtLines, firstStmt, len(lines))
		if err != nil {
			// ignore invalid nolint comments
			continue
		}
		manager.scopes[filename] = append(manager.scopes[filename], ns)
	}
	return &manager
}

// parseComment parses a single nolint comment and determines its scope.
func parseComment(
	text string,
	pos token.Position,
	stmtLines map[int]bool,
	firstStmt int,
	lastLine int,
) (nolintScope, error) {
	var ns nolintScope

	if !strings.HasPrefix(text, nolintPrefix) {
		return ns, fmt.Errorf("invalid nolint comment")
	}

	rest := text[len(nolintPrefix):]

	// A nolint comment can either have a list of rules after a colon (:)
	// or if no rules are specified, it applies to all rules
	if len(rest) > 0 && rest[0] != ':' {
		return ns, fmt.Errorf("invalid nolint comment format")
	}

	if len(rest) > 0 && rest[0] == ':' {
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return ns, fmt.Errorf("invalid nolint comment: no rules specified after colon")
		}
	}
	ns.rules = parseIgnoreRuleNames(rest)

	switch {
	case stmtLines[pos.Line]:
		// inline
		ns.start, ns.end = pos, pos
	case stmtLines[pos.Line+1]:
		ns.start = pos
		ns.end = token.Position{Filename: pos.Filename, Line: pos.Line + 1, Column: 1}
	case pos.Line < firstStmt:
		ns.start = token.Position{Filename: pos.Filename, Line: 1, Column: 1}
		ns.end = token.Position{Filename: pos.Filename, Line: lastLine, Column: 1}
	default:
		ns.start, ns.end = pos, pos
	}
	return ns, nil
}

// parseIgnoreRuleNames parses the rule list from the nolint comment.
func parseIgnoreRuleNames(text string) map[string]struct{} {
	rulesMap := make(map[string]struct{})
	if text == "" {
		return rulesMap
	}
	rules := strings.Split(text, ",")
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rulesMap[rule] = struct{}{}
		}
	}
	return rulesMap
}

// IsNolint checks if a given position and rule are nolinted.
func (m *Manager) IsNolint(pos token.Position, ruleName string) bool {
	scopes, exists := m.scopes[pos.Filename]
	if !exists {
		return false
	}
	for _, ns := range scopes {
		if pos.Line < ns.start.Line || pos.Line > ns.end.Line {
			continue
		}
		// If the rules list is empty, nolint applies to all rules
		if len(ns.rules) == 0 {
			return true
		}
		if _, exists := ns.rules[ruleName]; exists {
			return true
		}
	}
	return false
}
