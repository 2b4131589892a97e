package softmaxgo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

const Version = "0.1.0"

// CLI flag values
type cliOptions struct {
	configFile  string
	verbose     bool
	temperature float64
	seed        uint64
	count       int
	min         float64
	max         float64
	mean        float64
	stdDev      float64
	values      []float64
	file        string
	width       int
	row         int
}

type logFormatter struct{}

func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelText string
	switch entry.Level {
	case logrus.InfoLevel:
		levelText = "[INF]"
	case logrus.WarnLevel:
		levelText = "[WARN]"
	case logrus.ErrorLevel:
		levelText = "[ERR]"
	case logrus.DebugLevel:
		levelText = "[DBG]"
	default:
		levelText = "[???]"
	}
	return []byte(fmt.Sprintf("%s %s\n", levelText, entry.Message)), nil
}

func newLogger(out io.Writer, level string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// loadConfig reads the config file if one was given and applies any flags
// the user set explicitly on top of it.
func (o *cliOptions) loadConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = LoadConfig(o.configFile); err != nil {
			return Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("temperature") {
		cfg.Temperature = o.temperature
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("count") {
		cfg.Generator.Count = o.count
	}
	if flags.Changed("min") {
		cfg.Generator.Min = o.min
	}
	if flags.Changed("max") {
		cfg.Generator.Max = o.max
	}
	if flags.Changed("mean") {
		cfg.Generator.Mean = o.mean
	}
	if flags.Changed("std-dev") {
		cfg.Generator.StdDev = o.stdDev
	}
	return cfg, nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return strings.Join(parts, " ")
}

func formatValues32(values []float32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return strings.Join(parts, " ")
}

// newRootCommand builds the command tree. Each call returns fresh flag state.
func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "softmaxgo",
		Short: "Softmax with temperature and random sample generation",
		Long: `
		softmaxgo turns vectors of scores into probability distributions using a temperature-scaled softmax, and generates uniform or Gaussian samples to feed into it.
	`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	softmaxCmd := &cobra.Command{
		Use:   "softmax [--values v,...] [-- values...]",
		Short: "Compute the softmax of a vector",
		Long: `Values may be given with --values or as arguments (comma or space separated), or read as float32 rows from a little-endian binary file with --file and --width.

A bare negative number such as -1 is read as a flag, so pass negative values with --values=-1,2,3 or after the -- separator: softmaxgo softmax -- -1 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.verbose)
			out := cmd.OutOrStdout()

			if opts.file != "" {
				loader, err := NewValueLoader(opts.file, opts.width)
				if err != nil {
					return err
				}
				log.Debugf("loaded %d rows of width %d from %s", loader.NumRows(), loader.Width(), opts.file)
				if opts.row >= 0 {
					if opts.row >= loader.NumRows() {
						return fmt.Errorf("row %d of %d: %w", opts.row, loader.NumRows(), ErrInvalidArgument)
					}
					loader.Reset()
					for i := 0; i < opts.row; i++ {
						loader.NextRow()
					}
					probs := make([]float32, loader.Width())
					if err := SoftmaxRows(probs, loader.NextRow(), 1, loader.Width(), float32(cfg.Temperature)); err != nil {
						return err
					}
					fmt.Fprintln(out, formatValues32(probs))
					return nil
				}
				probs := make([]float32, len(loader.Rows()))
				if err := SoftmaxRows(probs, loader.Rows(), loader.NumRows(), loader.Width(), float32(cfg.Temperature)); err != nil {
					return err
				}
				for r := 0; r < loader.NumRows(); r++ {
					fmt.Fprintln(out, formatValues32(probs[r*loader.Width():(r+1)*loader.Width()]))
				}
				return nil
			}

			parsed, err := ParseValues(args)
			if err != nil {
				return err
			}
			values := append(append([]float64{}, opts.values...), parsed...)
			log.Debugf("softmax of %d values at temperature %g", len(values), cfg.Temperature)
			if cfg.Temperature <= 0 {
				log.Warnf("temperature %g is not positive, output may contain NaN or Inf", cfg.Temperature)
			}
			probs, err := Softmax(values, cfg.Temperature)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatValues(probs))
			return nil
		},
	}
	softmaxCmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", DefaultTemperature, "softmax temperature")
	softmaxCmd.Flags().StringVarP(&opts.file, "file", "f", "", "little-endian float32 file of logits")
	softmaxCmd.Flags().IntVarP(&opts.width, "width", "w", 0, "row width of --file")
	softmaxCmd.Flags().IntVar(&opts.row, "row", -1, "only print this row of --file, negative prints every row")
	softmaxCmd.Flags().Float64SliceVar(&opts.values, "values", nil, "comma separated values, may be negative")

	generateCmd := &cobra.Command{
		Use:       "generate [uniform|gaussian]",
		Short:     "Generate random samples",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{GeneratorUniform, GeneratorGaussian},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Generator.Kind = strings.ToLower(args[0])
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.verbose)
			gen, err := cfg.Generator.NewGenerator()
			if err != nil {
				return err
			}
			log.Debugf("drawing %d samples from %v with seed %d", cfg.Generator.Count, gen, cfg.Seed)
			values, err := gen.Generate(NewRand(cfg.Seed), cfg.Generator.Count)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatValues(values))
			return nil
		},
	}
	addGeneratorFlags(generateCmd, opts)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a sample and show its softmax",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.verbose)
			gen, err := cfg.Generator.NewGenerator()
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), log, NewRand(cfg.Seed), gen, cfg.Generator.Count, cfg.Temperature)
		},
	}
	addGeneratorFlags(demoCmd, opts)
	demoCmd.Flags().Float64VarP(&opts.temperature, "temperature", "t", DefaultTemperature, "softmax temperature")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "softmaxgo %s\n", color.GreenString(Version))
		},
	}

	rootCmd.AddCommand(softmaxCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func addGeneratorFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().Uint64Var(&opts.seed, "seed", DefaultSeed, "random seed")
	cmd.Flags().IntVarP(&opts.count, "count", "n", DefaultCount, "number of samples")
	cmd.Flags().Float64Var(&opts.min, "min", DefaultUniform().Min, "uniform lower bound")
	cmd.Flags().Float64Var(&opts.max, "max", DefaultUniform().Max, "uniform upper bound")
	cmd.Flags().Float64Var(&opts.mean, "mean", DefaultGaussian().Mean, "gaussian mean")
	cmd.Flags().Float64Var(&opts.stdDev, "std-dev", DefaultGaussian().StdDev, "gaussian standard deviation")
}

func runDemo(out io.Writer, log *logrus.Logger, r *rand.Rand, gen Generator, count int, temperature float64) error {
	values, err := gen.Generate(r, count)
	if err != nil {
		return err
	}
	log.Debugf("generated %d values from %v", len(values), gen)
	fmt.Fprintf(out, "%s %s\n", color.CyanString("values:"), formatValues(values))
	if len(values) == 0 {
		log.Warn("no values generated, nothing to normalize")
		return nil
	}

	summary, err := Describe(values)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", color.CyanString("summary:"), summary)

	probs, err := Softmax(values, temperature)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", color.CyanString("softmax(t=%g):", temperature), formatValues(probs))

	best, err := ArgMax(probs)
	if err != nil {
		return err
	}
	sampled, err := Sample(r, probs)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %d (p=%.4f)\n", color.GreenString("argmax:"), best, probs[best])
	fmt.Fprintf(out, "%s %d (p=%.4f)\n", color.YellowString("sampled:"), sampled, probs[sampled])
	return nil
}

func InitializeCommand() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
