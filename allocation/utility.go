package allocation

import "math"

// Utility returns the happiness of gathering the given apples and trees:
//
//	appleBase*ln(1+apples) + woodBase*ln(1+trees)
//
// ln(1+x) keeps the value finite at zero.
func Utility(p Params, apples, trees int) float64 {
	return p.AppleBaseUtility*math.Log1p(float64(apples)) + p.WoodBaseUtility*math.Log1p(float64(trees))
}

// Evaluate returns the utility of a chosen allocation. It does not check
// feasibility.
func Evaluate(p Params, a Allocation) float64 {
	return Utility(p, a.Apples, a.Trees)
}

// MaxTrees returns how many trees fit in the remaining actions.
// A non-positive cost is a configuration error and panics.
func MaxTrees(remaining, cost int) int {
	if cost <= 0 {
		panic("allocation: MaxTrees called with non-positive tree felling cost")
	}
	if remaining <= 0 {
		return 0
	}
	return remaining / cost
}
