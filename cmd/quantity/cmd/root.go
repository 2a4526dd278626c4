package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govalues/quantity"
	"github.com/govalues/quantity/internal/config"
	"github.com/govalues/quantity/internal/logging"
)

// options are shared by all subcommands.
type options struct {
	cfgFile   string
	verbose   bool
	precision int

	cfg config.Config
	log *logging.Logger
	out io.Writer
}

// NewRootCmd builds the quantity command tree.
func NewRootCmd() *cobra.Command {
	o := &options{cfg: config.Default(), log: logging.Noop()}

	rootCmd := &cobra.Command{
		Use:   "quantity",
		Short: "Convert and compute physical quantities",
		Long: `quantity converts values between units and does dimensional arithmetic.

Quantities are written as a number followed by units, for example
"20 mph", "9.81 m/s^2" or "1.04 ATM". Quote them in the shell.

Examples:
  quantity convert "20 mph" km/hr
  quantity reduce "24.525 N" "kg*m/s^2"
  quantity complex "2 N*m"
  quantity eval 100km 2hr / '>m/s'
  quantity units --dimension length`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.complete(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file in TOML or YAML format")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug messages to stderr")
	flags.IntVarP(&o.precision, "precision", "p", -1, "number of fraction digits, -1 for the shortest exact form")

	rootCmd.AddCommand(
		newConvertCmd(o),
		newReduceCmd(o),
		newComplexCmd(o),
		newEvalCmd(o),
		newUnitsCmd(o),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the quantity command with the process arguments.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// complete loads the config file and applies flag overrides.
func (o *options) complete(cmd *cobra.Command) error {
	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	if cmd.Flags().Changed("precision") {
		if o.precision < -1 || o.precision > config.MaxPrecision {
			return fmt.Errorf("precision %v is out of range [-1, %v]", o.precision, config.MaxPrecision)
		}
		o.cfg.Precision = o.precision
	}

	level, err := logging.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	if o.cfg.Output == config.OutputJSON {
		o.log = logging.NewJSON(cmd.ErrOrStderr(), level)
	} else {
		o.log = logging.NewText(cmd.ErrOrStderr(), level)
	}
	o.log = o.log.WithCommand(cmd.Name())
	o.out = cmd.OutOrStdout()
	o.log.Debug("configuration loaded",
		"file", o.cfgFile,
		"precision", o.cfg.Precision,
		"aliases", len(o.cfg.Aliases),
	)
	return nil
}

// units expands a user-defined alias.
func (o *options) units(s string) string {
	return o.cfg.Expand(s)
}

// quantityJSON is the JSON form of a printed quantity.
type quantityJSON struct {
	Magnitude float64        `json:"magnitude"`
	Units     string         `json:"units"`
	Exponents map[string]int `json:"exponents,omitempty"`
	Text      string         `json:"text"`
}

// print writes q in the configured format and precision.
func (o *options) print(q quantity.Quantity) error {
	text := q.String()
	if o.cfg.Precision >= 0 {
		text = fmt.Sprintf("%.*f", o.cfg.Precision, q)
	}
	if o.cfg.Output != config.OutputJSON {
		_, err := fmt.Fprintln(o.out, text)
		return err
	}
	v := quantityJSON{
		Magnitude: q.Magnitude(),
		Units:     q.UnitString(),
		Text:      text,
	}
	for _, d := range q.Mask().Dimensions() {
		if v.Exponents == nil {
			v.Exponents = make(map[string]int)
		}
		v.Exponents[d.String()] = q.Exponent(d)
	}
	return o.encode(v)
}

func (o *options) encode(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
