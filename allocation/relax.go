package allocation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// relaxMaxEvals bounds the function evaluations of Relax.
const relaxMaxEvals = 500

// Relaxation is the best real-valued allocation on the budget frontier.
type Relaxation struct {
	Apples      float64 `json:"apples"`
	Trees       float64 `json:"trees"`
	Utility     float64 `json:"utility"`
	Evaluations int     `json:"evaluations"`
}

// Relax maximises utility over real-valued apple counts with the rest of the
// budget spent on fractional trees, trees = (M - apples) / cost. It bounds
// how much the discrete grid leaves on the table.
func Relax(p Params) (Relaxation, error) {
	if err := p.Validate(); err != nil {
		return Relaxation{}, err
	}
	m := float64(p.MaxDailyActions)
	c := float64(p.TreeFellingCost)

	frontier := func(apples float64) float64 {
		return p.AppleBaseUtility*math.Log1p(apples) + p.WoodBaseUtility*math.Log1p((m-apples)/c)
	}
	at := func(apples float64) Relaxation {
		return Relaxation{Apples: apples, Trees: (m - apples) / c, Utility: frontier(apples)}
	}

	// Endpoints first: the interior search can only approach them.
	best := at(0)
	if r := at(m); r.Utility > best.Utility {
		best = r
	}
	if m == 0 {
		return best, nil
	}

	// apples = m*sigmoid(x) keeps the search unconstrained.
	squash := func(x float64) float64 { return m / (1 + math.Exp(-x)) }
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -frontier(squash(x[0]))
		},
	}
	settings := &optimize.Settings{FuncEvaluations: relaxMaxEvals}

	result, err := optimize.Minimize(problem, []float64{0}, settings, &optimize.NelderMead{})
	if result == nil {
		return Relaxation{}, fmt.Errorf("relaxing allocation: %w", err)
	}
	if r := at(squash(result.X[0])); r.Utility > best.Utility {
		best = r
	}
	best.Evaluations = result.Stats.FuncEvaluations
	return best, nil
}
