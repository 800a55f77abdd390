package allocation

// Evaluation is everything derived from one set of parameters and one
// daily choice. It is rebuilt from scratch on every change.
type Evaluation struct {
	Params     Params
	Grid       *Grid
	Optima     Optima
	Plan       Plan
	Proximity  Proximity
	Relaxation Relaxation
	Days       []DayTotal
}

// Run executes the whole pipeline: grid, optima, plan, proximity,
// continuous relaxation and accumulation.
func Run(p Params, apples, divisions int) (*Evaluation, error) {
	g, err := BuildGridWithDivisions(p, divisions)
	if err != nil {
		return nil, err
	}
	optima, err := FindOptima(g)
	if err != nil {
		return nil, err
	}
	plan, err := PlanDay(p, apples)
	if err != nil {
		return nil, err
	}
	relax, err := Relax(p)
	if err != nil {
		return nil, err
	}
	return &Evaluation{
		Params:     p,
		Grid:       g,
		Optima:     optima,
		Plan:       plan,
		Proximity:  ClassifyProximity(plan.Allocation, plan.Utility, optima),
		Relaxation: relax,
		Days:       Accumulate(p, plan),
	}, nil
}
