package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPlan_KnownPreferences(t *testing.T) {
	for _, pref := range []string{Vegetarian, Vegan, NonVegetarian} {
		plan := SelectPlan(pref)
		require.Len(t, plan, 3, pref)
		assert.Equal(t, "Breakfast", plan[0].MealName, pref)
		assert.Equal(t, "Lunch", plan[1].MealName, pref)
		assert.Equal(t, "Dinner", plan[2].MealName, pref)
		for _, m := range plan {
			assert.GreaterOrEqual(t, m.Macros.Carbs, 0.0)
			assert.GreaterOrEqual(t, m.Macros.Protein, 0.0)
			assert.GreaterOrEqual(t, m.Macros.Fat, 0.0)
			assert.Greater(t, m.Macros.Calories, 0.0)
		}
	}
}

func TestSelectPlan_VariantsDiffer(t *testing.T) {
	assert.NotEqual(t, SelectPlan(Vegan), SelectPlan(Vegetarian))
	assert.NotEqual(t, SelectPlan(Vegan), SelectPlan(NonVegetarian))
}

func TestSelectPlan_UnknownFallsBackToNonVegetarian(t *testing.T) {
	assert.Equal(t, SelectPlan(NonVegetarian), SelectPlan("keto"))
	assert.Equal(t, SelectPlan(NonVegetarian), SelectPlan(""))
	// exact match only
	assert.Equal(t, SelectPlan(NonVegetarian), SelectPlan("Vegan"))
}

func TestSelectPlan_ReturnsCopy(t *testing.T) {
	plan := SelectPlan(Vegan)
	plan[0].MealName = "Brunch"
	assert.Equal(t, "Breakfast", SelectPlan(Vegan)[0].MealName)
}

func TestTotals(t *testing.T) {
	got := Totals(SelectPlan(Vegan))
	assert.Equal(t, 145.0, got.Carbs)
	assert.Equal(t, 56.0, got.Protein)
	assert.Equal(t, 32.0, got.Fat)
	assert.Equal(t, 1160.0, got.Calories)
}
