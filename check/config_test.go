package check

import (
	"os"
	"path/filepath"
	"testing"

	tt "github.com/gnolang/proplogic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "custom.yaml")
	content := `name: laws
max_variables: 8
color: false
extensions: [".txt"]
rules:
  not-valid:
    severity: warning
  syntax-error:
    severity: "off"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "laws", config.Name)
	assert.Equal(t, 8, config.MaxVariables)
	assert.False(t, config.Color)
	assert.Equal(t, []string{".txt"}, config.Extensions)
	assert.Equal(t, tt.SeverityWarning, config.Rules[tt.RuleNotValid].Severity)
	assert.Equal(t, tt.SeverityOff, config.Rules[tt.RuleSyntaxError].Severity)
	// rules not mentioned keep their default
	assert.Equal(t, tt.SeverityWarning, config.Rules[tt.RuleTooManyVariables].Severity)
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidSeverity(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  not-valid:\n    severity: loud\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_Empty(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	require.NoError(t, WriteConfig(path, DefaultConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "severity: ERROR")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
