package cmd

import (
	"fmt"
	"time"

	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table [flags] expression",
		Short: "Print the truth table of an expression.",
		Long: `Print the truth table of an expression.
	Variables are sorted and rows enumerate their values in ascending binary order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpression(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, a.cfg)
			if err != nil {
				return err
			}
			n, err := parseExpression(expr)
			if err != nil {
				return err
			}
			if nb := len(table.Variables(expr)); nb > a.cfg.MaxVariables {
				return fmt.Errorf("expression has %d variables, at most %d are allowed", nb, a.cfg.MaxVariables)
			}
			start := time.Now()
			tbl := table.FromNode(expr, n)
			log.Debugf("%d rows over %d variables computed in %s", len(tbl.Rows), len(tbl.Vars), time.Since(start))
			rows := tbl.Rows
			if getFlag(cmd, "models") {
				rows = tbl.Models()
			}
			out := cmd.OutOrStdout()
			switch format {
			case config.FormatYAML:
				return writeTableYAML(out, tbl, rows)
			case config.FormatCSV:
				return writeTableCSV(out, tbl, rows, a.cfg)
			}
			if err := writeText(out, tbl, rows, a.cfg); err != nil {
				return err
			}
			if getFlag(cmd, "summary") {
				fmt.Fprintf(out, "%d of %d rows true: %s\n", tbl.Count(), len(tbl.Rows), tbl.Class())
			}
			return nil
		},
	}
	cmd.Flags().String("format", "", "output format: text, yaml or csv (default from configuration)")
	cmd.Flags().Bool("models", false, "only print rows where the expression is true")
	cmd.Flags().Bool("summary", false, "print the number of true rows and the class of the expression")
	return cmd
}

// outputFormat returns the format given on the command line, or the configured one.
func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format := getString(cmd, "format")
	if format == "" {
		return cfg.Format, nil
	}
	check := *cfg
	check.Format = format
	if err := check.Validate(); err != nil {
		return "", err
	}
	return format, nil
}
