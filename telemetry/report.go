package telemetry

import (
	"encoding/json"
	"log/slog"

	"github.com/pthm-cable/forage/allocation"
)

// OptimumRecord is the flat, serialisable form of an allocation.Optimum.
type OptimumRecord struct {
	Criterion string  `json:"criterion" csv:"criterion"`
	Apples    int     `json:"apples" csv:"apples"`
	Trees     int     `json:"trees" csv:"trees"`
	Utility   float64 `json:"utility" csv:"utility"`
}

// NewOptimumRecord flattens o.
func NewOptimumRecord(o allocation.Optimum) OptimumRecord {
	return OptimumRecord{
		Criterion: o.Criterion.String(),
		Apples:    o.Allocation.Apples,
		Trees:     o.Allocation.Trees,
		Utility:   o.Utility,
	}
}

// PlanRecord is the flat, serialisable form of an allocation.Plan.
type PlanRecord struct {
	Apples            int     `json:"apples"`
	Trees             int     `json:"trees"`
	ActionsUsed       int     `json:"actions_used"`
	ActionsUnused     int     `json:"actions_unused"`
	Utility           float64 `json:"utility"`
	RecommendedApples int     `json:"recommended_apples"`
	RecommendedTrees  int     `json:"recommended_trees"`
}

// Report is the JSON summary of one evaluation.
type Report struct {
	Params     allocation.Params     `json:"params"`
	Plan       PlanRecord            `json:"plan"`
	Grid       GridSummary           `json:"grid"`
	Optima     []OptimumRecord       `json:"optima"`
	Proximity  string                `json:"proximity"`
	Relaxation allocation.Relaxation `json:"relaxation"`
	// DiscretisationGap is the utility the grid loses against the
	// real-valued frontier optimum.
	DiscretisationGap float64 `json:"discretisation_gap"`
}

// NewReport builds the report of e.
func NewReport(e *allocation.Evaluation) Report {
	rec := e.Plan.Recommended()
	r := Report{
		Params: e.Params,
		Plan: PlanRecord{
			Apples:            e.Plan.Apples,
			Trees:             e.Plan.Trees,
			ActionsUsed:       e.Plan.ActionsUsed,
			ActionsUnused:     e.Plan.ActionsUnused,
			Utility:           e.Plan.Utility,
			RecommendedApples: rec.Apples,
			RecommendedTrees:  rec.Trees,
		},
		Grid:              Summarize(e.Grid),
		Proximity:         e.Proximity.String(),
		Relaxation:        e.Relaxation,
		DiscretisationGap: e.Relaxation.Utility - e.Optima.Happiness.Utility,
	}
	for _, o := range e.Optima.All() {
		r.Optima = append(r.Optima, NewOptimumRecord(o))
	}
	return r
}

// MarshalIndent encodes the report as indented JSON.
func (r Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// LogEvaluation writes e to the default slog logger.
func LogEvaluation(e *allocation.Evaluation) {
	slog.Info("grid", "summary", Summarize(e.Grid))
	for _, o := range e.Optima.All() {
		slog.Info("optimum", "record", o)
	}
	slog.Info("plan", "plan", e.Plan, "proximity", e.Proximity.String())
	if !e.Plan.Efficient() {
		slog.Warn("unused daily actions", "unused", e.Plan.ActionsUnused)
	}
	slog.Info("relaxation",
		"apples", e.Relaxation.Apples,
		"trees", e.Relaxation.Trees,
		"utility", e.Relaxation.Utility,
		"evaluations", e.Relaxation.Evaluations,
	)
}
