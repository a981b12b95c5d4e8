package service

import (
	"context"
	"time"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/classifier"
)

const dashboardDays = 7

// Moods the mocked history draws from. Anxious is scored but never sampled.
var sampleMoods = []string{"Happy", "Excited", "Neutral", "Tired", "Stressed"}

type GlucoseCard struct {
	Value  int                      `json:"value"`
	Status classifier.GlucoseStatus `json:"status"`
	Tone   string                   `json:"tone"`
}

type MoodCard struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

type CGMPoint struct {
	Date    string `json:"date"`
	Glucose int    `json:"glucose"`
}

type MoodPoint struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Label string `json:"label"`
}

type DashboardView struct {
	Profile    internal.UserProfile `json:"profile"`
	Glucose    GlucoseCard          `json:"glucose"`
	Mood       MoodCard             `json:"mood"`
	CGMHistory []CGMPoint           `json:"cgm_history"`
	MoodTrend  []MoodPoint          `json:"mood_trend"`
}

// Dashboard summarizes the active profile. The seven-day series are mock data
// drawn fresh on every call; only the current reading and mood are real.
func (a *Assistant) Dashboard(ctx context.Context, sessionID string) (*DashboardView, error) {
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p := s.Profile
	status := classifier.ClassifyGlucose(p.LatestCGM)
	cgm, moods := a.mockHistory(a.now())
	return &DashboardView{
		Profile:    p,
		Glucose:    GlucoseCard{Value: p.LatestCGM, Status: status, Tone: status.Tone()},
		Mood:       MoodCard{Label: p.Mood, Score: classifier.MoodScore(p.Mood)},
		CGMHistory: cgm,
		MoodTrend:  moods,
	}, nil
}

// mockHistory produces one point per day ending today. Glucose values fall
// in [80, 180).
func (a *Assistant) mockHistory(now time.Time) ([]CGMPoint, []MoodPoint) {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()

	cgm := make([]CGMPoint, 0, dashboardDays)
	moods := make([]MoodPoint, 0, dashboardDays)
	for i := 0; i < dashboardDays; i++ {
		day := now.AddDate(0, 0, i-(dashboardDays-1)).Format("Jan 2")
		cgm = append(cgm, CGMPoint{Date: day, Glucose: classifier.LowGlucoseThreshold + a.rng.Intn(100)})
		label := sampleMoods[a.rng.Intn(len(sampleMoods))]
		moods = append(moods, MoodPoint{Date: day, Mood: classifier.MoodScore(label), Label: label})
	}
	return cgm, moods
}
