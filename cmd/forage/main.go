// Package main runs the apple/wood allocation optimizer for one set of
// parameters and one daily choice and prints the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/pthm-cable/forage/allocation"
	"github.com/pthm-cable/forage/config"
	"github.com/pthm-cable/forage/telemetry"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("forage failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("forage", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to config YAML (empty = use defaults)")
	actions := fs.Int("actions", 0, "Maximum actions per day")
	cost := fs.Int("tree-cost", 0, "Actions needed to fell one tree")
	appleUtility := fs.Float64("apple-utility", 0, "Base utility per apple")
	woodUtility := fs.Float64("wood-utility", 0, "Base utility per wood")
	days := fs.Int("days", 0, "Days to accumulate over")
	apples := fs.Int("apples", 0, "Apples gathered per day")
	divisions := fs.Int("divisions", 0, "Grid divisions per axis")
	criterion := fs.String("criterion", "", "Only report this optimum (max_happiness, max_wood, max_apples)")
	outputDir := fs.String("output-dir", "", "Directory for CSV, YAML and JSON output")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	logFormat := fs.String("log-format", "json", "Log format: json or text")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	setupLogging(stderr, *logFormat)

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	// Flags only override the config when given explicitly.
	if fs.Changed("actions") {
		cfg.Simulation.MaxDailyActions = *actions
	}
	if fs.Changed("tree-cost") {
		cfg.Simulation.TreeFellingCost = *cost
	}
	if fs.Changed("apple-utility") {
		cfg.Simulation.AppleBaseUtility = *appleUtility
	}
	if fs.Changed("wood-utility") {
		cfg.Simulation.WoodBaseUtility = *woodUtility
	}
	if fs.Changed("days") {
		cfg.Simulation.Days = *days
	}
	if fs.Changed("apples") {
		cfg.Decision.Apples = *apples
	}
	if fs.Changed("divisions") {
		cfg.Grid.Divisions = *divisions
	}
	if fs.Changed("output-dir") {
		cfg.Output.Dir = *outputDir
	}
	if fs.Changed("metrics-file") {
		cfg.Output.MetricsFile = *metricsFile
	}
	cfg.ComputeDerived()

	only := allocation.Criteria
	if *criterion != "" {
		c, err := allocation.ParseCriterion(*criterion)
		if err != nil {
			return err
		}
		only = []allocation.Criterion{c}
	}

	params := cfg.Params()
	slog.Info("evaluating allocation",
		"max_daily_actions", params.MaxDailyActions,
		"tree_felling_cost", params.TreeFellingCost,
		"apple_base_utility", params.AppleBaseUtility,
		"wood_base_utility", params.WoodBaseUtility,
		"apples", cfg.Decision.Apples,
		"divisions", cfg.Grid.Divisions,
	)

	e, err := allocation.Run(params, cfg.Decision.Apples, cfg.Grid.Divisions)
	if err != nil {
		return err
	}
	telemetry.LogEvaluation(e)

	fmt.Fprintln(stdout, render(e, only))

	om, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}
	if err := om.WriteEvaluation(e); err != nil {
		return err
	}
	if om != nil {
		slog.Info("output written", "dir", om.Dir())
	}

	if cfg.Output.MetricsFile != "" {
		m := telemetry.NewMetrics()
		m.Observe(e)
		if err := m.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return err
		}
		slog.Info("metrics written", "path", cfg.Output.MetricsFile)
	}
	return nil
}

// setupLogging installs the default slog logger.
func setupLogging(w io.Writer, format string) {
	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, nil)
	} else {
		handler = slog.NewJSONHandler(w, nil)
	}
	slog.SetDefault(slog.New(handler))
}
