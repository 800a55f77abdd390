package allocation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaultScenario(t *testing.T) {
	p := defaultParams()
	e, err := Run(p, 10, DefaultDivisions)
	require.NoError(t, err)

	assert.Equal(t, Allocation{Apples: 10, Trees: 10}, e.Plan.Allocation)
	assert.Len(t, e.Days, p.SimulationDays)
	assert.Equal(t, MaxWood, e.Optima.Wood.Criterion)
	assert.GreaterOrEqual(t, e.Relaxation.Utility, e.Optima.Happiness.Utility)
	assert.Equal(t, ClassifyProximity(e.Plan.Allocation, e.Plan.Utility, e.Optima), e.Proximity)
}

func TestRunDegenerate(t *testing.T) {
	p := defaultParams()
	p.MaxDailyActions = 0
	e, err := Run(p, 0, DefaultDivisions)
	require.NoError(t, err)

	assert.Equal(t, e.Optima.Happiness.Allocation, e.Optima.Wood.Allocation)
	assert.Equal(t, e.Optima.Wood.Allocation, e.Optima.Apples.Allocation)
	// Zero utility reaches 95% of a zero optimum.
	assert.Equal(t, NearHappiness, e.Proximity)
}

func TestRunRejectsInvalidInput(t *testing.T) {
	p := defaultParams()
	_, err := Run(p, 60, DefaultDivisions)
	var ipe *InvalidParameterError
	assert.True(t, errors.As(err, &ipe))

	p.TreeFellingCost = 0
	_, err = Run(p, 10, DefaultDivisions)
	assert.True(t, errors.As(err, &ipe))
}

func TestRunRejectsNonFiniteUtilities(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := defaultParams()
		p.WoodBaseUtility = w

		e, err := Run(p, 10, DefaultDivisions)
		assert.Nil(t, e)
		var ipe *InvalidParameterError
		if assert.True(t, errors.As(err, &ipe), "wood=%v: got %v", w, err) {
			assert.Equal(t, "wood_base_utility", ipe.Field)
			assert.Equal(t, "must be finite", ipe.Reason)
		}
	}
}
