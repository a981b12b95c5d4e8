// Package engine implements the scripted assistant: an ordered table of
// keyword rules mapped to reply templates. It keeps no state between calls.
package engine

import (
	"fmt"
	"strings"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/classifier"
)

type Category string

const (
	CategoryGlucose  Category = "glucose"
	CategoryMood     Category = "mood"
	CategoryMeal     Category = "meal"
	CategoryPlan     Category = "plan"
	CategoryFallback Category = "fallback"
)

const FallbackMenu = "I can help you with:\n" +
	"• Tracking glucose (CGM) readings\n" +
	"• Logging meals and food intake\n" +
	"• Monitoring your mood\n" +
	"• Creating personalized meal plans\n" +
	"• Answering general health questions\n\n" +
	"What would you like to do?"

// Rule fires when the lower-cased input contains any of its keywords.
type Rule struct {
	Category Category
	Keywords []string
	Reply    func(p internal.UserProfile) string
}

func (r Rule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// DefaultRules is evaluated top to bottom; the first match wins.
var DefaultRules = []Rule{
	{Category: CategoryGlucose, Keywords: []string{"glucose", "cgm", "sugar"}, Reply: glucoseReply},
	{Category: CategoryMood, Keywords: []string{"mood", "feeling"}, Reply: moodReply},
	{Category: CategoryMeal, Keywords: []string{"meal", "food", "eat"}, Reply: mealReply},
	{Category: CategoryPlan, Keywords: []string{"plan"}, Reply: planReply},
}

type Engine struct {
	rules []Rule
}

func New(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

var defaultEngine = New(DefaultRules)

// Respond answers input for profile using the default rule table.
func Respond(input string, profile internal.UserProfile) string {
	return defaultEngine.Respond(input, profile)
}

func (e *Engine) Respond(input string, profile internal.UserProfile) string {
	if r, ok := e.match(input); ok {
		return r.Reply(profile)
	}
	return FallbackMenu
}

// Match reports which category input dispatches to.
func (e *Engine) Match(input string) Category {
	if r, ok := e.match(input); ok {
		return r.Category
	}
	return CategoryFallback
}

func (e *Engine) match(input string) (Rule, bool) {
	lowered := strings.ToLower(input)
	for _, r := range e.rules {
		if r.matches(lowered) {
			return r, true
		}
	}
	return Rule{}, false
}

// Greeting is the assistant's opening line for a new session.
func Greeting(p internal.UserProfile) string {
	return fmt.Sprintf("Hello %s! 👋 I'm your personal health assistant. I'm here to help you track your glucose levels, "+
		"log your meals, monitor your mood, and create personalized meal plans. How can I assist you today?", p.FirstName)
}

func glucoseReply(p internal.UserProfile) string {
	var guidance string
	switch classifier.ClassifyGlucose(p.LatestCGM) {
	case classifier.High:
		guidance = "This is above the normal range. Let's work on getting this under control with proper meal planning."
	case classifier.Low:
		guidance = "This is below the normal range. You may need to eat something soon."
	default:
		guidance = "This is within the normal range. Great job!"
	}
	return fmt.Sprintf("Your latest glucose reading is %d mg/dL. %s", p.LatestCGM, guidance)
}

func moodReply(p internal.UserProfile) string {
	return fmt.Sprintf("Your current mood is recorded as %s. How are you feeling right now? "+
		"I can help track your mood patterns over time.", p.Mood)
}

func mealReply(p internal.UserProfile) string {
	var condition string
	if p.HasMedicalConditions() {
		condition = fmt.Sprintf(", and I'll take into account your %s", p.MedicalConditions)
	}
	return fmt.Sprintf("I can help you log your meals and create a personalized meal plan. "+
		"Your dietary preference is %s%s. What would you like to do?", p.DietaryPreference, condition)
}

// planReply echoes MedicalConditions as-is, "None" included. mealReply
// suppresses the sentinel; this branch has never done so.
func planReply(p internal.UserProfile) string {
	return fmt.Sprintf("I can create a meal plan tailored to your needs. Based on your profile (%s, %s), "+
		"I'll suggest balanced meals. Would you like me to generate a meal plan for today?",
		p.DietaryPreference, p.MedicalConditions)
}
