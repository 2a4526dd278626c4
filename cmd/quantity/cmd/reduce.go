package cmd

import (
	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
)

func newReduceCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <quantity> <units>",
		Short: "Expand a named derived unit into other units",
		Long: `Expands a quantity with a single named derived dimension, such as
force or energy, into the dimensions of the target units.

Examples:
  quantity reduce "24.525 N" "kg*m/s^2"
  quantity reduce "1 kWh" "W*s"
  quantity reduce "1 J" "V*C"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quantity.Parse(args[0])
			if err != nil {
				return err
			}
			units := o.units(args[1])
			r, err := q.Reduce(units)
			o.log.LogConversion(cmd.Context(), q, units, r, err)
			if err != nil {
				return err
			}
			return o.print(r)
		},
	}
}
