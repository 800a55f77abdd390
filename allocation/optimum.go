package allocation

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
)

// Optimum is the best allocation found for one criterion.
type Optimum struct {
	Criterion  Criterion
	Allocation Allocation
	Utility    float64
}

// LogValue implements slog.LogValuer for structured logging.
func (o Optimum) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("criterion", o.Criterion.String()),
		slog.Int("apples", o.Allocation.Apples),
		slog.Int("trees", o.Allocation.Trees),
		slog.Float64("utility", o.Utility),
	)
}

// Optima holds one optimum per criterion.
type Optima struct {
	Happiness Optimum
	Wood      Optimum
	Apples    Optimum
}

// Get returns the optimum for c.
func (o Optima) Get(c Criterion) Optimum {
	switch c {
	case MaxWood:
		return o.Wood
	case MaxApples:
		return o.Apples
	}
	return o.Happiness
}

// All returns the optima in report order.
func (o Optima) All() []Optimum {
	return []Optimum{o.Happiness, o.Wood, o.Apples}
}

// FindOptimum scans the feasible cells of g (apple axis outer, tree axis
// inner) and returns the first cell maximising the criterion. For MaxWood
// and MaxApples the utility is recomputed from the chosen pair.
func FindOptimum(g *Grid, c Criterion) (Optimum, error) {
	cells := g.FeasibleCells()
	if len(cells) == 0 {
		return Optimum{}, ErrEmptyGrid
	}

	score := make([]float64, len(cells))
	for i, cell := range cells {
		switch c {
		case MaxHappiness:
			score[i] = cell.Utility
		case MaxWood:
			score[i] = float64(cell.Trees)
		case MaxApples:
			score[i] = float64(cell.Apples)
		default:
			return Optimum{}, fmt.Errorf("allocation: unknown criterion %v", c)
		}
	}

	// MaxIdx returns the first index holding the maximum.
	best := cells[floats.MaxIdx(score)]
	o := Optimum{Criterion: c, Allocation: best.Allocation, Utility: best.Utility}
	if c != MaxHappiness {
		o.Utility = Evaluate(g.Params(), best.Allocation)
	}
	return o, nil
}

// FindOptima computes the optimum for every criterion.
func FindOptima(g *Grid) (Optima, error) {
	var out Optima
	for _, c := range Criteria {
		o, err := FindOptimum(g, c)
		if err != nil {
			return Optima{}, fmt.Errorf("finding %s optimum: %w", c, err)
		}
		switch c {
		case MaxHappiness:
			out.Happiness = o
		case MaxWood:
			out.Wood = o
		case MaxApples:
			out.Apples = o
		}
	}
	return out, nil
}
