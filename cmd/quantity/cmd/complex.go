package cmd

import (
	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
)

func newComplexCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complex <quantity>",
		Short: "Collapse a quantity into a named derived unit",
		Long: `Collapses a quantity into the coherent SI unit of the first named
derived dimension that matches it.

Examples:
  quantity complex "24.525 kg*m/s^2"
  quantity complex "2 N*m"
  quantity complex "2 A/V"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quantity.Parse(args[0])
			if err != nil {
				return err
			}
			r, err := q.Complex()
			o.log.LogConversion(cmd.Context(), q, r.UnitString(), r, err)
			if err != nil {
				return err
			}
			return o.print(r)
		},
	}
}
