package cmd

import (
	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
)

func newConvertCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <quantity> <units>",
		Short: "Convert a quantity into other units",
		Long: `Converts a quantity into units of the same dimensions.

Temperatures alone are converted with an offset, volume may be converted
to length cubed and frequency to inverse time.

Examples:
  quantity convert "20 mph" km/hr
  quantity convert "0 °C" °F
  quantity convert "1 gal" in^3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quantity.Parse(args[0])
			if err != nil {
				return err
			}
			units := o.units(args[1])
			r, err := q.Convert(units)
			o.log.LogConversion(cmd.Context(), q, units, r, err)
			if err != nil {
				return err
			}
			return o.print(r)
		},
	}
}
