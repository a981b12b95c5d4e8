package internal

import "time"

// NoMedicalConditions is the directory value meaning the user has no condition.
const NoMedicalConditions = "None"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type UserProfile struct {
	UserID              int    `json:"user_id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	City                string `json:"city"`
	DietaryPreference   string `json:"dietary_preference"`
	MedicalConditions   string `json:"medical_conditions"`
	PhysicalLimitations string `json:"physical_limitations"`
	LatestCGM           int    `json:"latest_cgm"` // mg/dL
	Mood                string `json:"mood"`
}

// HasMedicalConditions reports whether MedicalConditions holds an actual
// condition rather than the "None" sentinel. The comparison is exact.
func (p UserProfile) HasMedicalConditions() bool {
	return p.MedicalConditions != NoMedicalConditions
}

func (p UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Macros struct {
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

type MealPlanEntry struct {
	MealName      string `json:"meal"`
	ScheduledTime string `json:"time"`
	Description   string `json:"description"`
	Macros        Macros `json:"macros"`
}

// Session is the state of one logged-in user. It lives until logout and is
// never written anywhere durable.
type Session struct {
	ID        string          `json:"id"`
	Profile   UserProfile     `json:"profile"`
	Messages  []ChatMessage   `json:"messages"`
	LastPlan  []MealPlanEntry `json:"last_plan,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Clone returns a copy whose slices can be appended to without affecting s.
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = append([]ChatMessage(nil), s.Messages...)
	c.LastPlan = append([]MealPlanEntry(nil), s.LastPlan...)
	return &c
}
