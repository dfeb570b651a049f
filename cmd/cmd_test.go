package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// clearEnv isolates a test from the environment and from any .env file.
func clearEnv(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), ".env"))
	for _, name := range []string{config.EnvConfig, config.EnvTrueSymbol, config.EnvFalseSymbol,
		config.EnvFormat, config.EnvColor, config.EnvMaxVariables} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// run executes the command line with args and returns what was printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"eval", "a & b", "a=1", "b=0"}, "F\n"},
		{[]string{"eval", "a -> b", "a=true", "b=f"}, "F\n"},
		{[]string{"eval", "a <-> b", "a=T", "b=T"}, "T\n"},
		{[]string{"eval", "a | b & c", "a=0", "b=1", "c=1"}, "T\n"},
		{[]string{"eval", "~b"}, "T\n"},
		{[]string{"eval", ""}, "F\n"},
	}
	for _, test := range tests {
		out, err := run(t, "", test.args...)
		require.NoError(t, err, "args %q", test.args)
		assert.Equal(t, test.expected, out, "args %q", test.args)
	}
}

func TestEvalSymbols(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvTrueSymbol, "yes")
	t.Setenv(config.EnvFalseSymbol, "no")
	out, err := run(t, "", "eval", "a ^ b", "a=yes", "b=no")
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestEvalStrict(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "", "eval", "--strict", "a & b", "a=1")
	assert.True(t, errors.Is(err, logic.ErrUnboundVariable))
}

func TestEvalInvalidBinding(t *testing.T) {
	clearEnv(t)
	for _, binding := range []string{"a=maybe", "a", "=1"} {
		_, err := run(t, "", "eval", "a", binding)
		assert.Error(t, err, "binding %q", binding)
	}
	_, err := run(t, "", "eval", "a", "a=1", "a=0")
	assert.Error(t, err)
}

func TestEvalSyntaxError(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "", "eval", "a -b", "a=1", "b=1")
	require.True(t, errors.Is(err, logic.ErrMalformedOperator))
	var buf bytes.Buffer
	reportError(&buf, err)
	assert.Equal(t, "error: malformed operator: expected '>' after '-'\na -b\n   ^\n", buf.String())
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}

func TestTableText(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "table", "--summary", "b -> a")
	require.NoError(t, err)
	assert.Equal(t, `a b | b -> a
F F | T
F T | F
T F | T
T T | T
3 of 4 rows true: contingent
`, out)
}

func TestTableModels(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "table", "--models", "a ^ b")
	require.NoError(t, err)
	assert.Equal(t, "a b | a ^ b\nF T | T\nT F | T\n", out)
}

func TestTableStdin(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "a |\n b\n", "table", "-")
	require.NoError(t, err)
	assert.Equal(t, "a b | a | b\nF F | F\nF T | T\nT F | T\nT T | T\n", out)
}

func TestTableCSV(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "table", "--format", "csv", "a & b")
	require.NoError(t, err)
	assert.Equal(t, "a,b,a & b\nF,F,F\nF,T,F\nT,F,F\nT,T,T\n", out)
}

func TestTableYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvFormat, config.FormatYAML)
	out, err := run(t, "", "table", "a | ~a")
	require.NoError(t, err)
	var doc yamlTable
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "a | ~a", doc.Expression)
	assert.Equal(t, []string{"a"}, doc.Variables)
	assert.Equal(t, "tautology", doc.Class)
	assert.Equal(t, 2, doc.Models)
	assert.Equal(t, []yamlRow{
		{Values: map[string]bool{"a": false}, Result: true},
		{Values: map[string]bool{"a": true}, Result: true},
	}, doc.Rows)
}

func TestTableColor(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "--color=always", "table", "a")
	require.NoError(t, err)
	assert.Contains(t, out, ansiGreen+"T"+ansiReset)
	assert.Contains(t, out, ansiRed+"F"+ansiReset)
	_, err = run(t, "", "--color=rainbow", "table", "a")
	assert.Error(t, err)
}

func TestTableTooManyVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMaxVariables, "2")
	_, err := run(t, "", "table", "a & b & c")
	assert.EqualError(t, err, "expression has 3 variables, at most 2 are allowed")
}

func TestTableErrors(t *testing.T) {
	clearEnv(t)
	_, err := run(t, "", "table", "--format", "json", "a")
	assert.Error(t, err)
	_, err = run(t, "", "table", "(a")
	assert.True(t, errors.Is(err, logic.ErrUnbalancedParentheses))
	_, err = run(t, "", "table")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gotruth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("true_symbol: \"1\"\nfalse_symbol: \"0\"\n"), 0o600))
	out, err := run(t, "", "--config="+path, "table", "~p")
	require.NoError(t, err)
	assert.Equal(t, "p | ~p\n0 | 1\n1 | 0\n", out)
}

func TestVars(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "vars", "c & a | b & a")
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", out)
}

func TestParse(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "parse", "~(a | b) & c")
	require.NoError(t, err)
	assert.Equal(t, "tokens: ~ (a | b) & c\ntree:   and(not(or(a, b)), c)\n", out)
	out, err = run(t, "", "parse", " ")
	require.NoError(t, err)
	assert.Equal(t, "tokens: \ntree:   <empty>\n", out)
	_, err = run(t, "", "parse", "a &")
	assert.True(t, errors.Is(err, logic.ErrUnexpectedToken))
}

func TestDimacs(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "dimacs", "b -> a")
	require.NoError(t, err)
	assert.Equal(t, "p cnf 2 1\nc a=1\nc b=2\n-2 1 0\n", out)
}

func TestLegend(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "legend")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "~   NOT (Negation) "), lines[0])
	assert.True(t, strings.HasPrefix(lines[5], "<-> IF AND ONLY IF (Biconditional) True when"), lines[5])
}

func TestLegendYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvFormat, config.FormatYAML)
	out, err := run(t, "", "legend")
	require.NoError(t, err)
	var legend []logic.LegendEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &legend))
	assert.Equal(t, logic.Legend(), legend)
}

func TestLegendFormatFlag(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "legend", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "symbol,name,description", lines[0])
	out, err = run(t, "", "legend", "--format=yaml")
	require.NoError(t, err)
	var legend []logic.LegendEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &legend))
	assert.Equal(t, logic.Legend(), legend)
	_, err = run(t, "", "legend", "--format", "json")
	assert.Error(t, err)
}

func TestDimacsXorChain(t *testing.T) {
	clearEnv(t)
	out, err := run(t, "", "dimacs", strings.Repeat("a ^ ", 40)+"a")
	require.NoError(t, err)
	assert.Less(t, strings.Count(out, "\n"), 400)
}
