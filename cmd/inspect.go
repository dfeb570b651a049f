package cmd

import (
	"fmt"
	"strings"

	"github.com/crillab/gotruth/cnf"
	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/logic"
	"github.com/crillab/gotruth/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars expression",
		Short: "List the variables of an expression, sorted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpression(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(table.Variables(expr), " "))
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse expression",
		Short: "Print the tokens and the syntax tree of an expression.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpression(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			tokens, err := logic.Tokenize(expr)
			if err != nil {
				return wrapError(expr, err)
			}
			n, err := logic.ParseTokens(tokens)
			if err != nil {
				return wrapError(expr, err)
			}
			strs := make([]string, len(tokens))
			for i, tok := range tokens {
				strs[i] = tok.Text
			}
			tree := "<empty>"
			if n != nil {
				tree = n.String()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokens: %s\n", strings.Join(strs, " "))
			fmt.Fprintf(out, "tree:   %s\n", tree)
			return nil
		},
	}
}

func newDimacsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs expression",
		Short: "Print an equisatisfiable CNF of an expression, in the DIMACS format.",
		Long: `Print an equisatisfiable CNF of an expression, in the DIMACS format.
	Variables are numbered from 1 in alphabetical order. Auxiliary variables come after them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpression(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			n, err := parseExpression(expr)
			if err != nil {
				return err
			}
			c := cnf.FromNode(n)
			log.Debugf("%d variables (%d auxiliary), %d clauses", c.NbVars, c.NbVars-len(c.Names), len(c.Clauses))
			return c.Dimacs(cmd.OutOrStdout())
		},
	}
}

func newLegendCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Describe the connectives.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd, a.cfg)
			if err != nil {
				return err
			}
			legend := logic.Legend()
			out := cmd.OutOrStdout()
			switch format {
			case config.FormatYAML:
				return writeYAML(out, legend)
			case config.FormatCSV:
				records := [][]string{{"symbol", "name", "description"}}
				for _, e := range legend {
					records = append(records, []string{e.Symbol, e.Name, e.Description})
				}
				return writeCSV(out, records)
			}
			p := newTablePrinter(3)
			p.AnsiEscapes(useColor(out, a.cfg.Color))
			for _, e := range legend {
				i := p.AddRow(e.Symbol, e.Name, e.Description)
				p.SetEscape(0, i, ansiBold)
			}
			return p.Print(out)
		},
	}
	cmd.Flags().String("format", "", "output format: text, yaml or csv (default from configuration)")
	return cmd
}
