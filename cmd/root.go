// Package cmd implements the gotruth command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go install".
var Version string

// app holds what the commands share once flags and configuration are read.
type app struct {
	cfg *config.Config
}

// Execute runs the command line and exits with a non-zero status on failure.
// This is called by main.main().
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gotruth",
		Short: "Truth tables for propositional logic.",
		Long: `Parse, evaluate and tabulate propositional expressions.
	Variables are single letters. Connectives are, from the tightest to the loosest:
	~ (not), & (and), ^ (xor), | (or), -> (implies) and <-> (iff).`,
		Version:       version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return a.loadConfig(cmd)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().String("config", "", "YAML configuration file (default $"+config.EnvConfig+")")
	root.PersistentFlags().String("color", "", "colorize output: auto, always or never")
	root.AddCommand(
		newEvalCmd(a),
		newTableCmd(a),
		newVarsCmd(),
		newParseCmd(),
		newDimacsCmd(),
		newLegendCmd(a),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(getString(cmd, "config"))
	if err != nil {
		return err
	}
	if color := getString(cmd, "color"); color != "" {
		cfg.Color = color
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	return nil
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// reportError prints err on w. Errors in expressions are highlighted.
func reportError(w io.Writer, err error) {
	var exprErr *expressionError
	if !errors.As(err, &exprErr) || exprErr.err.Pos < 0 {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	printSyntaxError(w, exprErr.expr, exprErr.err)
}

// printSyntaxError prints the error, then the expression, with a caret under the offending character.
func printSyntaxError(w io.Writer, expr string, err *logic.Error) {
	fmt.Fprintf(w, "error: %s: %s\n", err.Kind, err.Msg)
	fmt.Fprintln(w, expr)
	// Keep tabs so that the caret lines up.
	indent := []rune(expr[:min(err.Pos, len(expr))])
	for i, r := range indent {
		if r != '\t' {
			indent[i] = ' '
		}
	}
	fmt.Fprintf(w, "%s^\n", string(indent))
}
