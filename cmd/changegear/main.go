// Command changegear works out feed gear trains for the ubiquitous
// MW210V lathe; with a little doctoring of the data file it'll do for
// other lathes as well.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tarnvik/changegear/check"
	"github.com/tarnvik/changegear/config"
	"github.com/tarnvik/changegear/gear"
	"github.com/tarnvik/changegear/report"
	"github.com/tarnvik/changegear/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// cliOptions collects the root command flags.
type cliOptions struct {
	gears    string
	pitches  string
	unit     string
	checkSet string
	target   float64
	file     string
	example  string
	output   string
	mode     string
	workers  int
}

func newRootCmd() *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:           "changegear",
		Short:         "Determine gear trains for feed rates and thread pitches on a lathe",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("example") {
				path := o.example
				if path == "" {
					path = "lathe_data.yaml"
				}
				if err := config.WriteExample(path); err != nil {
					return err
				}
				fmt.Printf("Wrote example data file %q; edit it and rerun with -f.\n", path)

				return nil
			}

			cfg, err := resolveConfig(o)
			if err != nil {
				return err
			}

			if o.checkSet != "" {
				return runCheck(cfg, o)
			}

			return runSearch(cmd.Context(), cfg, o)
		},
	}

	cmd.Flags().StringVarP(&o.gears, "gears", "g", "", "comma separated available gears, e.g. -g 84,72,60,42")
	cmd.Flags().StringVarP(&o.pitches, "pitches", "p", "", "comma separated target feed rates, e.g. -p 8,12,16,24")
	cmd.Flags().StringVarP(&o.unit, "unit", "u", "", "pitch unit: mm or tpi")
	cmd.Flags().StringVarP(&o.checkSet, "check", "c", "", "check one gear set, six comma separated positions A..F with H for empty, e.g. -c 60,40,H,80,H,56")
	cmd.Flags().Float64VarP(&o.target, "target", "t", 0, "target pitch for --check error figures")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "lathe data file (YAML)")
	cmd.Flags().StringVarP(&o.example, "example", "e", "", "write an example data file and exit (optional file name)")
	cmd.Flags().Lookup("example").NoOptDefVal = "lathe_data.yaml"
	cmd.Flags().StringVarP(&o.output, "output", "o", "lathe_gears_result", "result log file")
	cmd.Flags().StringVarP(&o.mode, "mode", "m", string(report.Layout), "output mode: layout or list")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "search goroutines, 0 = all CPUs")

	cmd.AddCommand(newTpiboxCmd())

	return cmd
}

// resolveConfig layers the three sources: built-in MW210 values, the
// data file when given, command line flags last. A data file that
// cannot be read or parsed aborts the run; there is no silent
// continuation with leftover values.
func resolveConfig(o cliOptions) (config.Config, error) {
	cfg := config.Config{
		Machine: gear.Machine{
			SpindleTeeth:      56,
			SpindleDiameter:   56,
			LeadscrewPitch:    2,
			LeadscrewUnit:     gear.MM,
			LeadscrewDiameter: 23,
			MaxCenters:        135,
			ReachDimension:    110,
			GearClearance:     4,
			MinBeltTeeth:      33,
		},
		Gears:     gear.Inventory{24, 30, 40, 48, 50, 52, 60, 60, 66, 70, 72, 75},
		Pitches:   []float64{44, 40, 32, 28, 24, 22, 20, 19, 14, 11, 10, 9, 8, 7, 6},
		PitchUnit: gear.TPI,
	}

	if o.file != "" {
		loaded, err := config.Load(o.file)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if o.gears != "" {
		inv, err := parseInts(o.gears)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Gears = inv
	}
	if o.pitches != "" {
		ps, err := parseFloats(o.pitches)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Pitches = ps
	}
	if o.unit != "" {
		cfg.PitchUnit = gear.Unit(o.unit)
		if !cfg.PitchUnit.Valid() {
			return config.Config{}, gear.ErrBadUnit
		}
	}

	return cfg, nil
}

// runCheck validates one operator-specified gear set and prints the
// diagnostic report.
func runCheck(cfg config.Config, o cliOptions) error {
	slots, err := gear.ParseSlots(strings.Split(o.checkSet, ","))
	if err != nil {
		return err
	}
	var opts []check.Option
	if o.target > 0 {
		opts = append(opts, check.WithTarget(o.target))
	}
	rep, err := check.Run(cfg.Machine, cfg.PitchUnit, slots, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("---------- %s ----------\n", strings.ToUpper(string(cfg.PitchUnit)))
	fmt.Println(report.Check(rep))

	return nil
}

// runSearch runs the full pipeline and publishes the report to stdout
// and the result log.
func runSearch(ctx context.Context, cfg config.Config, o cliOptions) error {
	logger, err := resultLogger(o.output)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	sink := func(s string) {
		fmt.Println(s)
		logger.Info(s)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	budget := gear.PermutationBudget(len(cfg.Gears))
	sink("Lathe feed rate and thread cutting gear train search.\n")
	sink(fmt.Sprintf("Available gears: %v\n", cfg.Gears))
	sink(fmt.Sprintf("Target feed rates: %v (%s)\n", cfg.Pitches, cfg.PitchUnit))
	fmt.Printf("Checking %d possible placements. This may take some time.\n", budget)

	start := time.Now()
	bar := newProgressBar(os.Stderr)
	results, err := search.Run(ctx, cfg.Machine, cfg.Gears, cfg.PitchUnit,
		search.WithWorkers(o.workers),
		search.WithProgress(bar.update),
	)
	bar.finish()
	if err != nil {
		return err
	}

	sink(fmt.Sprintf("Discarded %d placements which do not fit on the lathe.\n", budget-uint64(len(results))))
	sink(fmt.Sprintf("From the remaining %d, the nearest matches to the target pitches are:\n", len(results)))

	matches, err := search.Matches(results, cfg.Pitches)
	if err != nil {
		sink("No feasible configurations.")

		return nil
	}
	for _, m := range matches {
		block, rerr := report.Match(m, cfg.PitchUnit, report.Mode(o.mode))
		if rerr != nil {
			return rerr
		}
		sink(block + "\n")
	}

	smallest, biggest, err := search.Extremes(results, cfg.PitchUnit)
	if err == nil {
		sink(report.Extremes(smallest, biggest))
	}
	sink(fmt.Sprintf("\nTotal execution time: %s.", report.Runtime(time.Since(start))))

	return nil
}

// resultLogger builds the message-only zap logger that writes the
// result file, overwriting a previous run's output.
func resultLogger(path string) (*zap.Logger, error) {
	if err := os.Truncate(path, 0); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.TimeKey = ""
	zcfg.EncoderConfig.LevelKey = ""
	zcfg.EncoderConfig.CallerKey = ""

	return zcfg.Build()
}

func parseInts(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad gear %q: %w", p, err)
		}
		out = append(out, n)
	}

	return out, nil
}

func parseFloats(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad pitch %q: %w", p, err)
		}
		out = append(out, f)
	}

	return out, nil
}
