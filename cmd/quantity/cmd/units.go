package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
	"github.com/govalues/quantity/internal/config"
)

// unitJSON is the JSON form of a registry entry.
type unitJSON struct {
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name"`
	Dimension  string   `json:"dimension"`
	Ratio      float64  `json:"ratio"`
	Prefixable bool     `json:"prefixable"`
	Aliases    []string `json:"aliases,omitempty"`
}

func newUnitsCmd(o *options) *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List known units",
		Long: `Lists units of the registry with their dimension and ratio to the
base unit of the dimension.

Examples:
  quantity units
  quantity units --dimension length
  quantity units --dimension magnetic_flux`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := quantity.Units()
			if dimension != "" {
				d, ok := quantity.ParseDimension(dimension)
				if !ok {
					return fmt.Errorf("unknown dimension %q", dimension)
				}
				units = quantity.UnitsOf(d)
			}
			o.log.Debug("listing units", "dimension", dimension, "count", len(units))
			return o.printUnits(units)
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "only list units of this dimension")
	return cmd
}

func (o *options) printUnits(units []quantity.Unit) error {
	if o.cfg.Output == config.OutputJSON {
		list := make([]unitJSON, 0, len(units))
		for _, u := range units {
			list = append(list, unitJSON{
				Symbol:     u.Symbol(),
				Name:       u.Name(),
				Dimension:  u.Dimension().String(),
				Ratio:      u.Ratio(),
				Prefixable: u.Prefixable(),
				Aliases:    u.Aliases(),
			})
		}
		return o.encode(list)
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tDIMENSION\tRATIO\tPREFIXABLE\tALIASES")
	for _, u := range units {
		prefixable := "no"
		if u.Prefixable() {
			prefixable = "yes"
		}
		aliases := strings.Join(u.Aliases(), ",")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n", u.Symbol(), u.Name(), u.Dimension(), u.Ratio(), prefixable, aliases)
	}
	return w.Flush()
}
