// Package config loads the settings of the gotruth command.
//
// Settings come, by increasing priority, from built-in defaults, a YAML file and
// environment variables. Environment variables may themselves be read from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Names of the environment variables.
const (
	EnvConfig       = "GOTRUTH_CONFIG"
	EnvTrueSymbol   = "GOTRUTH_TRUE_SYMBOL"
	EnvFalseSymbol  = "GOTRUTH_FALSE_SYMBOL"
	EnvFormat       = "GOTRUTH_FORMAT"
	EnvColor        = "GOTRUTH_COLOR"
	EnvMaxVariables = "GOTRUTH_MAX_VARIABLES"
)

// maxVariablesLimit bounds MaxVariables: a table has 2^MaxVariables rows.
const maxVariablesLimit = 24

// Config holds the settings of the command.
type Config struct {
	TrueSymbol   string `yaml:"true_symbol"`
	FalseSymbol  string `yaml:"false_symbol"`
	Format       string `yaml:"format"`
	Color        string `yaml:"color"`
	MaxVariables int    `yaml:"max_variables"` // Expressions with more variables are rejected
}

// Default returns the default settings.
func Default() Config {
	return Config{
		TrueSymbol:   "T",
		FalseSymbol:  "F",
		Format:       FormatText,
		Color:        ColorAuto,
		MaxVariables: 16,
	}
}

// Validate checks the settings are consistent.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML, FormatCSV:
	default:
		return fmt.Errorf("invalid format %q: expected %q, %q or %q", c.Format, FormatText, FormatYAML, FormatCSV)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: expected %q, %q or %q", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.TrueSymbol == "" || c.FalseSymbol == "" {
		return errors.New("truth symbols cannot be empty")
	}
	if c.TrueSymbol == c.FalseSymbol {
		return fmt.Errorf("true and false are both written %q", c.TrueSymbol)
	}
	if c.MaxVariables < 1 || c.MaxVariables > maxVariablesLimit {
		return fmt.Errorf("invalid max_variables %d: must be between 1 and %d", c.MaxVariables, maxVariablesLimit)
	}
	return nil
}

// Decode reads YAML settings from r into c.
// Settings absent from r are left untouched. Unknown settings are an error.
func (c *Config) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Load returns the default settings, overridden by the YAML file at path, if any,
// then by environment variables.
// If path is empty, the file named by the GOTRUTH_CONFIG environment variable is used, if set.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	if err := c.Decode(f); err != nil {
		return fmt.Errorf("could not read configuration %q: %v", path, err)
	}
	log.Debugf("configuration read from %s", path)
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvTrueSymbol); ok {
		c.TrueSymbol = v
	}
	if v, ok := os.LookupEnv(EnvFalseSymbol); ok {
		c.FalseSymbol = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		c.Color = v
	}
	if v, ok := os.LookupEnv(EnvMaxVariables); ok {
		nb, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %v", EnvMaxVariables, v, err)
		}
		c.MaxVariables = nb
	}
	return nil
}

// LoadDotEnv loads environment variables from a .env file.
// The file is named by the ENV_PATH environment variable, or defaultPath if it is not set.
// A missing file is not an error. Variables already set are not overridden.
func LoadDotEnv(defaultPath string) error {
	path := os.Getenv("ENV_PATH")
	if path == "" {
		path = defaultPath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no %s file, skipping", path)
			return nil
		}
		return fmt.Errorf("could not load %q: %v", path, err)
	}
	log.Debugf("environment read from %s", path)
	return nil
}
