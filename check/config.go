package check

import (
	"errors"
	"io"
	"io/fs"
	"os"

	tt "github.com/gnolang/proplogic/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = ".proplogic.yaml"

// Config represents the overall configuration of the checker and the CLI.
type Config struct {
	Name         string                   `yaml:"name"`
	MaxVariables int                      `yaml:"max_variables"`
	Color        bool                     `yaml:"color"`
	Extensions   []string                 `yaml:"extensions"`
	Rules        map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:         "proplogic",
		MaxVariables: 16,
		Color:        true,
		Extensions:   []string{".logic", ".prop"},
		Rules: map[string]tt.ConfigRule{
			tt.RuleNotValid:         {Severity: tt.SeverityError},
			tt.RuleSyntaxError:      {Severity: tt.SeverityError},
			tt.RuleTooManyVariables: {Severity: tt.SeverityWarning},
		},
	}
}

// LoadConfig reads a configuration file on top of the defaults. A missing
// file at DefaultConfigPath (or an empty path) yields the defaults; a
// missing file at any other path is an error.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()

	explicit := configurationPath != "" && configurationPath != DefaultConfigPath
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	return config, nil
}

// WriteConfig writes config as YAML to configurationPath.
func WriteConfig(configurationPath string, config Config) error {
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configurationPath, d, 0o644)
}
