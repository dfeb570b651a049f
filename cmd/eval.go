package cmd

import (
	"fmt"

	"github.com/crillab/gotruth/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] expression [name=value...]",
		Short: "Evaluate an expression under an assignment.",
		Long: `Evaluate an expression under an assignment.
	Values are written 1/0, t/f, true/false or with the configured symbols.
	Unbound variables are false, unless --strict is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := readExpression(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			model, err := parseAssignment(args[1:], a.cfg)
			if err != nil {
				return err
			}
			n, err := parseExpression(expr)
			if err != nil {
				return err
			}
			var res bool
			if getFlag(cmd, "strict") {
				if res, err = logic.EvaluateStrict(n, model); err != nil {
					return err
				}
			} else {
				res = logic.Evaluate(n, model)
			}
			log.Debugf("%q under %v is %t", expr, model, res)
			fmt.Fprintln(cmd.OutOrStdout(), symbol(res, a.cfg))
			return nil
		},
	}
	cmd.Flags().Bool("strict", false, "fail on variables missing from the assignment")
	return cmd
}
