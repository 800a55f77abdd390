package allocation

import (
	"gonum.org/v1/gonum/mat"
)

// DefaultDivisions caps each grid axis at roughly 51 samples.
const DefaultDivisions = 50

// Cell is one sampled (apples, trees) pair.
type Cell struct {
	Row, Col int // Indices into the apple and tree axes
	Allocation
	Utility  float64 // Zero when the cell is infeasible
	Feasible bool
}

// Grid holds utilities sampled over apple counts (rows) and tree counts
// (columns). Infeasible cells carry no value; use At or the feasibility mask
// rather than reading the matrix directly.
type Grid struct {
	params   Params
	apples   []int
	trees    []int
	utility  *mat.Dense
	feasible []bool // row-major, len(apples)*len(trees)
}

// BuildGrid samples the feasible allocation space at the default resolution.
func BuildGrid(p Params) (*Grid, error) {
	return BuildGridWithDivisions(p, DefaultDivisions)
}

// BuildGridWithDivisions samples the allocation space with each axis split
// into at most divisions steps (plus the zero sample). divisions <= 0 falls
// back to DefaultDivisions.
func BuildGridWithDivisions(p Params, divisions int) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if divisions <= 0 {
		divisions = DefaultDivisions
	}

	appleStep, treeStep := AxisSteps(p, divisions)
	g := &Grid{
		params: p,
		apples: axis(p.MaxDailyActions, appleStep),
		trees:  axis(MaxTrees(p.MaxDailyActions, p.TreeFellingCost), treeStep),
	}

	rows, cols := len(g.apples), len(g.trees)
	g.utility = mat.NewDense(rows, cols, nil)
	g.feasible = make([]bool, rows*cols)

	for i, a := range g.apples {
		for j, t := range g.trees {
			// a <= M and t*cost <= M, so neither side overflows.
			if t*p.TreeFellingCost > p.MaxDailyActions-a {
				continue
			}
			g.feasible[i*cols+j] = true
			g.utility.Set(i, j, Utility(p, a, t))
		}
	}
	return g, nil
}

// AxisSteps returns the sampling steps of the apple and tree axes.
func AxisSteps(p Params, divisions int) (appleStep, treeStep int) {
	appleStep = max(1, p.MaxDailyActions/divisions)
	// M/c/d == M/(c*d) for non-negative ints, without the product.
	treeStep = max(1, p.MaxDailyActions/p.TreeFellingCost/divisions)
	return appleStep, treeStep
}

// axis returns 0, step, 2*step, ... up to and including limit when reachable.
// Counting samples rather than values keeps budgets near MaxInt from wrapping.
func axis(limit, step int) []int {
	n := limit/step + 1
	out := make([]int, n)
	for k := range out {
		out[k] = k * step
	}
	return out
}

// Params returns the parameters the grid was built from.
func (g *Grid) Params() Params { return g.params }

// Apples returns a copy of the apple axis.
func (g *Grid) Apples() []int { return append([]int(nil), g.apples...) }

// Trees returns a copy of the tree axis.
func (g *Grid) Trees() []int { return append([]int(nil), g.trees...) }

// Dims returns the number of apple and tree samples.
func (g *Grid) Dims() (rows, cols int) { return len(g.apples), len(g.trees) }

// At returns the utility of cell (i, j) and whether the cell is feasible.
func (g *Grid) At(i, j int) (float64, bool) {
	if !g.feasible[i*len(g.trees)+j] {
		return 0, false
	}
	return g.utility.At(i, j), true
}

// Cell returns the cell at (i, j).
func (g *Grid) Cell(i, j int) Cell {
	u, ok := g.At(i, j)
	return Cell{
		Row:        i,
		Col:        j,
		Allocation: Allocation{Apples: g.apples[i], Trees: g.trees[j]},
		Utility:    u,
		Feasible:   ok,
	}
}

// Cells returns every cell in scan order: apple axis outer, tree axis inner.
func (g *Grid) Cells() []Cell {
	rows, cols := g.Dims()
	out := make([]Cell, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, g.Cell(i, j))
		}
	}
	return out
}

// FeasibleCells returns the feasible cells in scan order.
func (g *Grid) FeasibleCells() []Cell {
	out := make([]Cell, 0, len(g.feasible))
	for _, c := range g.Cells() {
		if c.Feasible {
			out = append(out, c)
		}
	}
	return out
}

// FeasibleCount returns the number of feasible cells.
func (g *Grid) FeasibleCount() int {
	n := 0
	for _, ok := range g.feasible {
		if ok {
			n++
		}
	}
	return n
}

// Utilities returns a copy of the utility matrix. Infeasible entries are 0.
func (g *Grid) Utilities() *mat.Dense {
	return mat.DenseCopyOf(g.utility)
}
