package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		in   string
		want Criterion
	}{
		{"max_happiness", MaxHappiness},
		{"Max-Happiness", MaxHappiness},
		{"happiness", MaxHappiness},
		{"max wood", MaxWood},
		{"WOOD", MaxWood},
		{"max_apples", MaxApples},
		{" apples ", MaxApples},
	}
	for _, tt := range tests {
		got, err := ParseCriterion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCriterionSuggests(t *testing.T) {
	_, err := ParseCriterion("max_happines")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "max_happiness"`)

	_, err = ParseCriterion("woood")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "wood"`)

	_, err = ParseCriterion("photosynthesis")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCriterionString(t *testing.T) {
	assert.Equal(t, "max_happiness", MaxHappiness.String())
	assert.Equal(t, "max_wood", MaxWood.String())
	assert.Equal(t, "max_apples", MaxApples.String())
	assert.Equal(t, "Max wood", MaxWood.Label())
	assert.Equal(t, "criterion(9)", Criterion(9).String())
}
