package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/forage/allocation"
	"github.com/pthm-cable/forage/config"
)

// GridRow is one grid cell in grid.csv. Utility is empty for infeasible cells.
type GridRow struct {
	Apples   int    `csv:"apples"`
	Trees    int    `csv:"trees"`
	Feasible bool   `csv:"feasible"`
	Utility  string `csv:"utility"`
}

// SweepRow is one evaluated daily choice in sweep.csv.
type SweepRow struct {
	Apples        int     `csv:"apples"`
	Trees         int     `csv:"trees"`
	ActionsUnused int     `csv:"actions_unused"`
	Utility       float64 `csv:"utility"`
	Proximity     string  `csv:"proximity"`
}

// OutputManager writes an evaluation to a directory of CSV, YAML and JSON files.
type OutputManager struct {
	dir       string
	sweepFile *os.File

	// Track if headers have been written
	sweepHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvaluation writes grid.csv, optima.csv, accumulation.csv and report.json.
func (om *OutputManager) WriteEvaluation(e *allocation.Evaluation) error {
	if om == nil {
		return nil
	}
	if err := om.WriteGrid(e.Grid); err != nil {
		return err
	}
	if err := om.WriteOptima(e.Optima); err != nil {
		return err
	}
	if err := om.WriteAccumulation(e.Days); err != nil {
		return err
	}
	return om.WriteReport(NewReport(e))
}

// WriteGrid writes every sampled cell to grid.csv in scan order.
func (om *OutputManager) WriteGrid(g *allocation.Grid) error {
	if om == nil {
		return nil
	}
	cells := g.Cells()
	rows := make([]GridRow, len(cells))
	for i, c := range cells {
		rows[i] = GridRow{Apples: c.Apples, Trees: c.Trees, Feasible: c.Feasible}
		if c.Feasible {
			rows[i].Utility = strconv.FormatFloat(c.Utility, 'f', 6, 64)
		}
	}
	return om.writeCSV("grid.csv", rows)
}

// WriteOptima writes the three optima to optima.csv.
func (om *OutputManager) WriteOptima(o allocation.Optima) error {
	if om == nil {
		return nil
	}
	var rows []OptimumRecord
	for _, rec := range o.All() {
		rows = append(rows, NewOptimumRecord(rec))
	}
	return om.writeCSV("optima.csv", rows)
}

// WriteAccumulation writes the per-day running totals to accumulation.csv.
func (om *OutputManager) WriteAccumulation(days []allocation.DayTotal) error {
	if om == nil {
		return nil
	}
	return om.writeCSV("accumulation.csv", days)
}

// WriteReport saves the report as JSON.
func (om *OutputManager) WriteReport(r Report) error {
	if om == nil {
		return nil
	}
	data, err := r.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, "report.json"), data, 0644); err != nil {
		return fmt.Errorf("writing report.json: %w", err)
	}
	return nil
}

// WriteSweep appends one row to sweep.csv, creating it on first use.
func (om *OutputManager) WriteSweep(row SweepRow) error {
	if om == nil {
		return nil
	}
	if om.sweepFile == nil {
		f, err := os.Create(filepath.Join(om.dir, "sweep.csv"))
		if err != nil {
			return fmt.Errorf("creating sweep.csv: %w", err)
		}
		om.sweepFile = f
	}

	records := []SweepRow{row}
	if !om.sweepHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.sweepFile); err != nil {
			return fmt.Errorf("writing sweep: %w", err)
		}
		om.sweepHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.sweepFile); err != nil {
		return fmt.Errorf("writing sweep: %w", err)
	}
	return nil
}

func (om *OutputManager) writeCSV(name string, rows interface{}) error {
	f, err := os.Create(filepath.Join(om.dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes open output files. Calling it again is a no-op.
func (om *OutputManager) Close() error {
	if om == nil || om.sweepFile == nil {
		return nil
	}
	f := om.sweepFile
	om.sweepFile = nil
	return f.Close()
}
