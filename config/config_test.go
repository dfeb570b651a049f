package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "T", cfg.TrueSymbol)
	assert.Equal(t, "F", cfg.FalseSymbol)
}

func TestDecode(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader(`
true_symbol: "1"
false_symbol: "0"
format: csv
`))
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.TrueSymbol)
	assert.Equal(t, "0", cfg.FalseSymbol)
	assert.Equal(t, FormatCSV, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, 16, cfg.MaxVariables)
}

func TestDecodeEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Decode(strings.NewReader("")))
	assert.Equal(t, Default(), cfg)
}

func TestDecodeUnknownField(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Decode(strings.NewReader("colour: never\n")))
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "gotruth.yaml", "color: never\nmax_variables: 8\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 8, cfg.MaxVariables)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestLoadFileFromEnv(t *testing.T) {
	path := writeFile(t, "gotruth.yaml", "format: yaml\n")
	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "gotruth.yaml", "true_symbol: V\nmax_variables: 8\n")
	t.Setenv(EnvTrueSymbol, "1")
	t.Setenv(EnvFalseSymbol, "0")
	t.Setenv(EnvMaxVariables, "4")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1", cfg.TrueSymbol)
	assert.Equal(t, "0", cfg.FalseSymbol)
	assert.Equal(t, 4, cfg.MaxVariables)
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv(EnvMaxVariables, "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"format":        func(c *Config) { c.Format = "json" },
		"color":         func(c *Config) { c.Color = "sometimes" },
		"empty symbol":  func(c *Config) { c.TrueSymbol = "" },
		"same symbols":  func(c *Config) { c.FalseSymbol = c.TrueSymbol },
		"no variables":  func(c *Config) { c.MaxVariables = 0 },
		"too many vars": func(c *Config) { c.MaxVariables = 40 },
	}
	for name, change := range tests {
		cfg := Default()
		change(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "GOTRUTH_FORMAT=csv\n")
	t.Setenv("ENV_PATH", path)
	// t.Setenv restores the variable after the test, even though it is set by LoadDotEnv.
	t.Setenv(EnvFormat, "")
	require.NoError(t, os.Unsetenv(EnvFormat))
	require.NoError(t, LoadDotEnv(".env"))
	assert.Equal(t, "csv", os.Getenv(EnvFormat))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
