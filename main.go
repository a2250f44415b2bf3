package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sputtering/config"
	"sputtering/element"
	"sputtering/sweep"
)

var (
	configPath string
	verbose    bool
	flags      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sputter",
	Short: "Compare Sigmund and Zalm sputtering yields over an energy sweep",
	Long: `sputter evaluates Sigmund's and Zalm's total sputtering yield formulas
for one projectile/target pair over a range of incident energies, writes
the yields as JSON and plots both curves against energy in keV.`,
	SilenceUsage: true,
	RunE:         runSweep,
}

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the embedded element table",
	RunE:  runElements,
}

var configCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Write the default configuration to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.DefaultConfig().Save(args[0])
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "sputter.yaml", "YAML run configuration")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	f.StringVar(&flags.Projectile.Symbol, "projectile", "", "projectile element symbol")
	f.StringVar(&flags.Target.Symbol, "target", "", "target element symbol")
	f.Float64Var(&flags.Energy.From, "from", 0, "first incident energy [eV]")
	f.Float64Var(&flags.Energy.To, "to", 0, "end of the energy range, exclusive [eV]")
	f.Float64Var(&flags.Energy.Step, "step", 0, "energy step [eV]")
	f.StringVar((*string)(&flags.Regime), "regime", "", "Sigmund regime: high, low or auto")
	f.IntVar(&flags.Samples, "samples", 0, "projectile isotopes sampled per energy, 0 disables")
	f.Int64Var(&flags.Seed, "seed", 0, "isotope sampling seed")
	f.StringVar(&flags.Output.JSON, "json", "", "JSON output file")
	f.StringVar(&flags.Output.Chart, "chart", "", "PNG chart output file")

	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("projectile") {
		cfg.Projectile = flags.Projectile
	}
	if changed("target") {
		cfg.Target = flags.Target
	}
	if changed("from") {
		cfg.Energy.From = flags.Energy.From
	}
	if changed("to") {
		cfg.Energy.To = flags.Energy.To
	}
	if changed("step") {
		cfg.Energy.Step = flags.Energy.Step
	}
	if changed("regime") {
		cfg.Regime = flags.Regime
	}
	if changed("samples") {
		cfg.Samples = flags.Samples
	}
	if changed("seed") {
		cfg.Seed = flags.Seed
	}
	if changed("json") {
		cfg.Output.JSON = flags.Output.JSON
	}
	if changed("chart") {
		cfg.Output.Chart = flags.Output.Chart
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(lvl zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, err := newLogger(lvl)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := sweep.Run(cfg.Params(), logger)
	if err != nil {
		return err
	}

	if cfg.Output.JSON != "" {
		if err := res.SaveJSON(cfg.Output.JSON); err != nil {
			return err
		}
		logger.Info("Saved yields", zap.String("path", cfg.Output.JSON))
	}
	if cfg.Output.Chart != "" {
		if err := res.SaveChart(cfg.Output.Chart); err != nil {
			return err
		}
		logger.Info("Saved chart", zap.String("path", cfg.Output.Chart))
	}

	sum := res.Summary()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\tmin\tmax\tmean\n")
	fmt.Fprintf(w, "Sigmund\t%.4g\t%.4g\t%.4g\n", sum.Sigmund.Min, sum.Sigmund.Max, sum.Sigmund.Mean)
	fmt.Fprintf(w, "Zalm\t%.4g\t%.4g\t%.4g\n", sum.Zalm.Min, sum.Zalm.Max, sum.Zalm.Mean)
	fmt.Fprintf(w, "\nSigmund/Zalm ratio: %.3g .. %.3g over %d points\n", sum.RatioMin, sum.RatioMax, sum.Points)
	return w.Flush()
}

func runElements(cmd *cobra.Command, args []string) error {
	els, err := element.Elements()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "symbol\tZ\tM [amu]\tUb [eV]\tisotopes\n")
	for _, el := range els {
		ub := "-"
		if el.IsTarget() {
			ub = fmt.Sprintf("%.2f", el.SurfaceBinding)
		}
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%s\t%d\n", el.Symbol, el.Number, el.Mass, ub, len(el.Isotopes))
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
