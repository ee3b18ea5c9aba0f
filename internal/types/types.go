package types

import (
	"fmt"
	"go/token"
	"strings"
)

// Rule names reported by the checker.
const (
	RuleNotValid         = "not-valid"
	RuleSyntaxError      = "syntax-error"
	RuleTooManyVariables = "too-many-variables"
)

// Severity is the importance of a rule's issues.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	}
	return "UNKNOWN"
}

// MarshalYAML writes the severity by name.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

// MarshalText makes JSON output carry the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// UnmarshalYAML reads a severity name, case-insensitively.
func (s *Severity) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ERROR":
		return SeverityError, nil
	case "WARNING":
		return SeverityWarning, nil
	case "INFO":
		return SeverityInfo, nil
	case "OFF":
		return SeverityOff, nil
	}
	return SeverityError, fmt.Errorf("unknown severity %q", name)
}

// ConfigRule is the per-rule section of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Issue is a problem found in a proposition file.
type Issue struct {
	Rule        string         `json:"rule"`
	Filename    string         `json:"filename"`
	Proposition string         `json:"proposition"`
	Message     string         `json:"message"`
	Note        string         `json:"note,omitempty"`
	Severity    Severity       `json:"severity"`
	Start       token.Position `json:"start"`
	End         token.Position `json:"end"`
}
