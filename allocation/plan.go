package allocation

import "log/slog"

// Plan is the daily routine derived from a chosen number of apples: the
// remaining actions go to felling as many trees as fit.
type Plan struct {
	Allocation
	ActionsUsed   int
	ActionsUnused int
	Utility       float64
}

// PlanDay builds the plan for gathering the given apples each day.
func PlanDay(p Params, apples int) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	if apples < 0 || apples > p.MaxDailyActions {
		return Plan{}, &InvalidParameterError{Field: "apples", Value: float64(apples), Reason: "must be within [0, max_daily_actions]"}
	}

	a := Allocation{Apples: apples, Trees: MaxTrees(p.MaxDailyActions-apples, p.TreeFellingCost)}
	used := a.Cost(p)
	return Plan{
		Allocation:    a,
		ActionsUsed:   used,
		ActionsUnused: p.MaxDailyActions - used,
		Utility:       Evaluate(p, a),
	}, nil
}

// Efficient reports whether the plan spends the whole budget.
func (pl Plan) Efficient() bool {
	return pl.ActionsUnused == 0
}

// Recommended returns an allocation that spends the whole budget while
// keeping the planned trees. Leftover actions are too few for another tree,
// so they become apples.
func (pl Plan) Recommended() Allocation {
	return Allocation{Apples: pl.Apples + pl.ActionsUnused, Trees: pl.Trees}
}

// LogValue implements slog.LogValuer for structured logging.
func (pl Plan) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apples", pl.Apples),
		slog.Int("trees", pl.Trees),
		slog.Int("actions_used", pl.ActionsUsed),
		slog.Int("actions_unused", pl.ActionsUnused),
		slog.Float64("utility", pl.Utility),
	)
}

// DayTotal holds running totals at the end of a simulated day.
type DayTotal struct {
	Day    int     `json:"day" csv:"day"`
	Apples int     `json:"apples" csv:"apples_cumulative"`
	Wood   float64 `json:"wood" csv:"wood_cumulative"`
}

// Accumulate repeats the plan for p.SimulationDays days and returns the
// running totals. Daily wood is trees*WoodBaseUtility.
func Accumulate(p Params, pl Plan) []DayTotal {
	out := make([]DayTotal, 0, p.SimulationDays)
	dailyWood := float64(pl.Trees) * p.WoodBaseUtility
	for day := 1; day <= p.SimulationDays; day++ {
		out = append(out, DayTotal{
			Day:    day,
			Apples: pl.Apples * day,
			Wood:   dailyWood * float64(day),
		})
	}
	return out
}
