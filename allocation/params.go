// Package allocation evaluates how a fixed daily budget of actions is best
// split between gathering apples and felling trees.
//
// Everything here is a pure function of Params: callers rebuild the grid on
// every parameter change and nothing is retained between calls.
package allocation

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyGrid is returned when an optimum is requested from a grid that has
// no feasible cell.
var ErrEmptyGrid = errors.New("allocation: grid has no feasible cell")

// InvalidParameterError reports a parameter outside its allowed range.
type InvalidParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("allocation: invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

// Params holds the inputs of one simulation.
type Params struct {
	MaxDailyActions  int     `json:"max_daily_actions"` // Action budget per day
	TreeFellingCost  int     `json:"tree_felling_cost"` // Actions needed to fell one tree
	AppleBaseUtility float64 `json:"apple_base_utility"`
	WoodBaseUtility  float64 `json:"wood_base_utility"`
	SimulationDays   int     `json:"simulation_days"` // Only used for accumulation, never for optimisation
}

// Validate checks every field and returns the first violation.
func (p Params) Validate() error {
	switch {
	case p.MaxDailyActions < 0:
		return &InvalidParameterError{Field: "max_daily_actions", Value: float64(p.MaxDailyActions), Reason: "must be >= 0"}
	case p.TreeFellingCost <= 0:
		return &InvalidParameterError{Field: "tree_felling_cost", Value: float64(p.TreeFellingCost), Reason: "must be > 0"}
	case !finite(p.AppleBaseUtility):
		return &InvalidParameterError{Field: "apple_base_utility", Value: p.AppleBaseUtility, Reason: "must be finite"}
	case !finite(p.WoodBaseUtility):
		return &InvalidParameterError{Field: "wood_base_utility", Value: p.WoodBaseUtility, Reason: "must be finite"}
	case p.AppleBaseUtility < 0:
		return &InvalidParameterError{Field: "apple_base_utility", Value: p.AppleBaseUtility, Reason: "must be >= 0"}
	case p.WoodBaseUtility < 0:
		return &InvalidParameterError{Field: "wood_base_utility", Value: p.WoodBaseUtility, Reason: "must be >= 0"}
	case p.SimulationDays < 0:
		return &InvalidParameterError{Field: "simulation_days", Value: float64(p.SimulationDays), Reason: "must be >= 0"}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Allocation is one day's choice.
type Allocation struct {
	Apples int `json:"apples" csv:"apples"`
	Trees  int `json:"trees" csv:"trees"`
}

// Cost returns the number of actions the allocation consumes.
func (a Allocation) Cost(p Params) int {
	return a.Apples + a.Trees*p.TreeFellingCost
}

// Feasible reports whether the allocation fits in the daily budget.
func (a Allocation) Feasible(p Params) bool {
	return a.Apples >= 0 && a.Trees >= 0 && a.Cost(p) <= p.MaxDailyActions
}
