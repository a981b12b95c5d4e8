// Package classifier derives status labels from profile measurements.
package classifier

type GlucoseStatus string

const (
	Low    GlucoseStatus = "Low"
	Normal GlucoseStatus = "Normal"
	High   GlucoseStatus = "High"
)

// Readings strictly below LowGlucoseThreshold are Low and strictly above
// HighGlucoseThreshold are High. Both thresholds are themselves Normal.
const (
	LowGlucoseThreshold  = 80
	HighGlucoseThreshold = 180
)

const DefaultMoodScore = 3

var moodScores = map[string]int{
	"Happy":    5,
	"Excited":  5,
	"Neutral":  3,
	"Tired":    2,
	"Stressed": 2,
	"Anxious":  1,
}

// ClassifyGlucose maps a mg/dL reading to a status. Every int is accepted,
// including physically impossible negatives.
func ClassifyGlucose(value int) GlucoseStatus {
	switch {
	case value < LowGlucoseThreshold:
		return Low
	case value > HighGlucoseThreshold:
		return High
	default:
		return Normal
	}
}

// MoodScore returns the 1-5 intensity for a mood label. Lookup is exact and
// case-sensitive; unknown labels score DefaultMoodScore.
func MoodScore(mood string) int {
	if s, ok := moodScores[mood]; ok {
		return s
	}
	return DefaultMoodScore
}

// Tone is the display color class the dashboard uses for a status.
func (s GlucoseStatus) Tone() string {
	switch s {
	case Low:
		return "destructive"
	case High:
		return "accent"
	default:
		return "secondary"
	}
}
