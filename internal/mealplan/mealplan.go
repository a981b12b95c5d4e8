// Package mealplan picks one of the fixed three-meal plans by dietary
// preference.
package mealplan

import "github.com/KeerthanaRajaR/gen-well-agent/internal"

const (
	Vegetarian    = "vegetarian"
	Vegan         = "vegan"
	NonVegetarian = "non-vegetarian"
)

var plans = map[string][]internal.MealPlanEntry{
	Vegetarian: {
		{
			MealName:      "Breakfast",
			ScheduledTime: "8:00 AM",
			Description:   "Greek yogurt with mixed berries, chia seeds and a handful of walnuts",
			Macros:        internal.Macros{Carbs: 35, Protein: 20, Fat: 15, Calories: 350},
		},
		{
			MealName:      "Lunch",
			ScheduledTime: "12:30 PM",
			Description:   "Quinoa bowl with chickpeas, roasted vegetables and tahini dressing",
			Macros:        internal.Macros{Carbs: 55, Protein: 18, Fat: 14, Calories: 450},
		},
		{
			MealName:      "Dinner",
			ScheduledTime: "7:00 PM",
			Description:   "Paneer and vegetable stir-fry with brown rice",
			Macros:        internal.Macros{Carbs: 50, Protein: 25, Fat: 18, Calories: 480},
		},
	},
	Vegan: {
		{
			MealName:      "Breakfast",
			ScheduledTime: "8:00 AM",
			Description:   "Overnight oats with almond milk, flaxseed and sliced banana",
			Macros:        internal.Macros{Carbs: 45, Protein: 12, Fat: 10, Calories: 320},
		},
		{
			MealName:      "Lunch",
			ScheduledTime: "12:30 PM",
			Description:   "Lentil and spinach soup with a whole-grain roll",
			Macros:        internal.Macros{Carbs: 52, Protein: 20, Fat: 8, Calories: 400},
		},
		{
			MealName:      "Dinner",
			ScheduledTime: "7:00 PM",
			Description:   "Tofu and broccoli stir-fry with soba noodles",
			Macros:        internal.Macros{Carbs: 48, Protein: 24, Fat: 14, Calories: 440},
		},
	},
	NonVegetarian: {
		{
			MealName:      "Breakfast",
			ScheduledTime: "8:00 AM",
			Description:   "Scrambled eggs with spinach and whole-grain toast",
			Macros:        internal.Macros{Carbs: 25, Protein: 22, Fat: 16, Calories: 340},
		},
		{
			MealName:      "Lunch",
			ScheduledTime: "12:30 PM",
			Description:   "Grilled chicken salad with mixed greens, avocado and olive oil",
			Macros:        internal.Macros{Carbs: 20, Protein: 35, Fat: 20, Calories: 420},
		},
		{
			MealName:      "Dinner",
			ScheduledTime: "7:00 PM",
			Description:   "Baked salmon with roasted sweet potato and steamed green beans",
			Macros:        internal.Macros{Carbs: 40, Protein: 32, Fat: 18, Calories: 470},
		},
	},
}

// SelectPlan returns the plan for an exact dietary preference match. Anything
// unrecognized gets the non-vegetarian plan. Glucose and mood play no part in
// the choice. The returned slice is a copy and safe to modify.
func SelectPlan(dietaryPreference string) []internal.MealPlanEntry {
	plan, ok := plans[dietaryPreference]
	if !ok {
		plan = plans[NonVegetarian]
	}
	out := make([]internal.MealPlanEntry, len(plan))
	copy(out, plan)
	return out
}

// Totals sums the macros of every entry in plan.
func Totals(plan []internal.MealPlanEntry) internal.Macros {
	var t internal.Macros
	for _, m := range plan {
		t.Carbs += m.Macros.Carbs
		t.Protein += m.Macros.Protein
		t.Fat += m.Macros.Fat
		t.Calories += m.Macros.Calories
	}
	return t
}
