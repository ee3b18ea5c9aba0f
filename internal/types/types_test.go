package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		want    Severity
		wantErr bool
	}{
		{"ERROR", SeverityError, false},
		{"warning", SeverityWarning, false},
		{" Info ", SeverityInfo, false},
		{"off", SeverityOff, false},
		{"loud", SeverityError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSeverity(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_Encoding(t *testing.T) {
	t.Parallel()
	rule := ConfigRule{Severity: SeverityWarning}

	y, err := yaml.Marshal(rule)
	require.NoError(t, err)
	assert.Equal(t, "severity: WARNING\n", string(y))

	var fromYAML ConfigRule
	require.NoError(t, yaml.Unmarshal([]byte("severity: info\n"), &fromYAML))
	assert.Equal(t, SeverityInfo, fromYAML.Severity)

	j, err := json.Marshal(Issue{Rule: RuleNotValid, Severity: SeverityOff})
	require.NoError(t, err)
	assert.Contains(t, string(j), `"severity":"OFF"`)

	var issue Issue
	require.NoError(t, json.Unmarshal(j, &issue))
	assert.Equal(t, SeverityOff, issue.Severity)
}
