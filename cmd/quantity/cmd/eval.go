package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/quantity/internal/rpn"
)

func newEvalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <tokens>...",
		Short: "Evaluate an expression in reverse Polish notation",
		Long: `Evaluates an expression over quantities written in reverse Polish notation.
Operands are quantities without spaces, such as 100km or 9.81m/s^2.

Operators:
  + - * /       arithmetic
  pow           power, the exponent is a dimensionless integer
  inv neg abs   unary arithmetic
  sqrt cbrt     roots
  complex       collapse into a named derived unit
  >units        convert
  >>units       reduce

Quote operators that the shell expands and put "--" before negative operands.

Examples:
  quantity eval 100km 2hr / '>m/s'
  quantity eval 2N 3m '*' complex
  quantity eval 3m 2 pow`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := rpn.Evaluator{Expand: o.units}
			r, err := e.Evaluate(strings.Join(args, " "))
			o.log.LogEvaluation(cmd.Context(), len(args), r, err)
			if err != nil {
				return err
			}
			return o.print(r)
		},
	}
}
