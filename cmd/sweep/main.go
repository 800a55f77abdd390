// Package main sweeps every daily apple choice for one set of parameters
// and logs how each resulting plan scores.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/pthm-cable/forage/allocation"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/telemetry"
)

// formatDuration formats a duration as minutes and fractional seconds.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Millisecond)
	m := d / time.Minute
	d -= m * time.Minute
	s := float64(d) / float64(time.Second)
	return fmt.Sprintf("%dm%06.3fs", m, s)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Base config YAML file (empty = use defaults)")
	outputDir := fs.String("output", "", "Output directory for results")
	quiet := fs.Bool("quiet", false, "Only print the best plan")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(stderr, nil)))

	if *outputDir == "" {
		return errors.New("--output is required")
	}

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()
	params := cfg.Params()

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	var progress io.Writer
	if !*quiet {
		progress = stdout
	}
	best, err := sweep(params, cfg.Grid.Divisions, om, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nBest daily plan: %d apples, %d trees, utility %.2f (%s)\n",
		best.Apples, best.Trees, best.Utility, best.Proximity)
	fmt.Fprintf(stdout, "Sweep saved to: %s\n", om.Dir())
	return om.Close()
}

// sweep evaluates every apple count from 0 to the daily budget and returns
// the first row with the highest utility. Progress lines go to progress
// when it is non-nil.
func sweep(p allocation.Params, divisions int, om *telemetry.OutputManager, progress io.Writer) (telemetry.SweepRow, error) {
	g, err := allocation.BuildGridWithDivisions(p, divisions)
	if err != nil {
		return telemetry.SweepRow{}, err
	}
	optima, err := allocation.FindOptima(g)
	if err != nil {
		return telemetry.SweepRow{}, err
	}

	total := p.MaxDailyActions + 1
	var best telemetry.SweepRow
	haveBest := false
	startTime := time.Now()

	for apples := 0; apples <= p.MaxDailyActions; apples++ {
		plan, err := allocation.PlanDay(p, apples)
		if err != nil {
			return telemetry.SweepRow{}, err
		}
		row := telemetry.SweepRow{
			Apples:        plan.Apples,
			Trees:         plan.Trees,
			ActionsUnused: plan.ActionsUnused,
			Utility:       plan.Utility,
			Proximity:     allocation.ClassifyProximity(plan.Allocation, plan.Utility, optima).String(),
		}
		if err := om.WriteSweep(row); err != nil {
			return telemetry.SweepRow{}, err
		}
		if !haveBest || row.Utility > best.Utility {
			best, haveBest = row, true
		}

		if progress != nil {
			fmt.Fprintf(progress, "Eval %d/%d: apples=%d trees=%d utility=%.2f (best=%.2f) | elapsed: %s\n",
				apples+1, total, row.Apples, row.Trees, row.Utility, best.Utility,
				formatDuration(time.Since(startTime)))
		}
	}

	slog.Info("sweep complete",
		"plans", total,
		"best_apples", best.Apples,
		"best_trees", best.Trees,
		"best_utility", best.Utility,
		"grid_optimum", optima.Happiness,
	)
	return best, nil
}
