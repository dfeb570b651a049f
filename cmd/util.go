package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// expressionError is an error in the expression given on the command line.
type expressionError struct {
	expr string
	err  *logic.Error
}

func (e *expressionError) Error() string {
	return e.err.Error()
}

func (e *expressionError) Unwrap() error {
	return e.err
}

// wrapError attaches expr to err if it is an error in expr.
func wrapError(expr string, err error) error {
	var e *logic.Error
	if errors.As(err, &e) {
		return &expressionError{expr: expr, err: e}
	}
	return err
}

// readExpression returns the expression given as argument, or read from in if the argument is "-".
func readExpression(arg string, in io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	bytes, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("could not read expression: %v", err)
	}
	return strings.TrimRight(string(bytes), "\r\n"), nil
}

// parseExpression parses expr, keeping expr along with any error so that it can be highlighted.
func parseExpression(expr string) (logic.Node, error) {
	start := time.Now()
	n, err := logic.Parse(expr)
	if err != nil {
		return nil, wrapError(expr, err)
	}
	if n == nil {
		log.Debugf("parsed empty expression %q in %s", expr, time.Since(start))
	} else {
		log.Debugf("parsed %q in %s: %s", expr, time.Since(start), n)
	}
	return n, nil
}

// parseValue reads a truth value: 1/0, t/f, true/false in any case, or the configured symbols.
func parseValue(s string, cfg *config.Config) (bool, error) {
	switch s {
	case cfg.TrueSymbol:
		return true, nil
	case cfg.FalseSymbol:
		return false, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false, fmt.Errorf("invalid truth value %q", s)
	}
	return b, nil
}

// parseAssignment reads "name=value" pairs.
func parseAssignment(pairs []string, cfg *config.Config) (logic.Assignment, error) {
	res := make(logic.Assignment, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid binding %q: expected name=value", pair)
		}
		if _, ok := res[name]; ok {
			return nil, fmt.Errorf("variable %s bound twice", name)
		}
		b, err := parseValue(value, cfg)
		if err != nil {
			return nil, fmt.Errorf("invalid binding %q: %v", pair, err)
		}
		res[name] = b
	}
	return res, nil
}

// symbol returns the configured representation of b.
func symbol(b bool, cfg *config.Config) string {
	if b {
		return cfg.TrueSymbol
	}
	return cfg.FalseSymbol
}
