package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/forage/allocation"
)

// GridSummary holds aggregate statistics over the feasible cells of a grid.
type GridSummary struct {
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	FeasibleCells int     `json:"feasible_cells"`
	MinUtility    float64 `json:"min_utility"`
	MeanUtility   float64 `json:"mean_utility"`
	MaxUtility    float64 `json:"max_utility"`

	// Utility distribution over feasible cells
	UtilityP10 float64 `json:"utility_p10"`
	UtilityP50 float64 `json:"utility_p50"`
	UtilityP90 float64 `json:"utility_p90"`
}

// Summarize computes the summary of g.
func Summarize(g *allocation.Grid) GridSummary {
	rows, cols := g.Dims()
	s := GridSummary{Rows: rows, Cols: cols}

	cells := g.FeasibleCells()
	if len(cells) == 0 {
		return s
	}
	values := make([]float64, len(cells))
	for i, c := range cells {
		values[i] = c.Utility
	}

	s.FeasibleCells = len(values)
	s.MinUtility = floats.Min(values)
	s.MaxUtility = floats.Max(values)
	s.MeanUtility = stat.Mean(values, nil)

	// Quantile needs sorted input
	sort.Float64s(values)
	s.UtilityP10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	s.UtilityP50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	s.UtilityP90 = stat.Quantile(0.90, stat.Empirical, values, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GridSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rows", s.Rows),
		slog.Int("cols", s.Cols),
		slog.Int("feasible_cells", s.FeasibleCells),
		slog.Float64("min_utility", s.MinUtility),
		slog.Float64("mean_utility", s.MeanUtility),
		slog.Float64("max_utility", s.MaxUtility),
		slog.Float64("utility_p10", s.UtilityP10),
		slog.Float64("utility_p50", s.UtilityP50),
		slog.Float64("utility_p90", s.UtilityP90),
	)
}
