package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/classifier"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/engine"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/mealplan"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/storage"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// Directory is the read side of the user roster the assistant needs.
type Directory interface {
	FindUserByID(ctx context.Context, id int) (*internal.UserProfile, error)
	IDRange() (min, max int, ok bool)
}

type MealPlanView struct {
	DietaryPreference string                   `json:"dietary_preference"`
	Meals             []internal.MealPlanEntry `json:"meals"`
	Totals            internal.Macros          `json:"totals"`
	LatestCGM         int                      `json:"latest_cgm"`
	GlucoseStatus     classifier.GlucoseStatus `json:"glucose_status"`
	Mood              string                   `json:"mood"`
}

// Assistant runs the per-session operations: login, chat, meal plans and the
// dashboard. The core engine and selector are pure; all session state goes
// through the SessionStore.
type Assistant struct {
	users    Directory
	sessions storage.SessionStore
	engine   *engine.Engine
	delay    Delayer
	now      func() time.Time
	logger   internal.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

type Option func(*Assistant)

func WithDelay(d Delayer) Option            { return func(a *Assistant) { a.delay = d } }
func WithClock(now func() time.Time) Option { return func(a *Assistant) { a.now = now } }
func WithEngine(e *engine.Engine) Option    { return func(a *Assistant) { a.engine = e } }
func WithRand(r *rand.Rand) Option          { return func(a *Assistant) { a.rng = r } }

func NewAssistant(users Directory, sessions storage.SessionStore, logger internal.Logger, opts ...Option) *Assistant {
	a := &Assistant{
		users:    users,
		sessions: sessions,
		engine:   engine.New(engine.DefaultRules),
		delay:    NoDelay,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(a.now().UnixNano()))
	}
	return a
}

// LoginGuidance is shown when a login id is not in the directory.
func (a *Assistant) LoginGuidance() string {
	lo, hi, ok := a.users.IDRange()
	if !ok {
		return "Invalid User ID. No users are currently available."
	}
	return fmt.Sprintf("Invalid User ID. Please enter a valid ID between %d-%d.", lo, hi)
}

// Login activates the profile for req.UserID in a new session seeded with the
// assistant's greeting. A missing, non-positive or unknown id is an expected
// outcome and comes back as a 404 AppError wrapping storage.ErrUserNotFound.
func (a *Assistant) Login(ctx context.Context, req *LoginRequest) (*internal.Session, error) {
	if err := ValidateLoginRequest(req); err != nil {
		return nil, internal.WrapAppError(404, a.LoginGuidance(), fmt.Errorf("%w: %v", storage.ErrUserNotFound, err))
	}
	profile, err := a.users.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, internal.WrapAppError(404, a.LoginGuidance(), err)
		}
		return nil, err
	}
	s := &internal.Session{
		ID:        uuid.NewString(),
		Profile:   *profile,
		CreatedAt: a.now(),
	}
	s.Messages = append(s.Messages, a.newMessage(internal.RoleAssistant, engine.Greeting(*profile)))
	if err := a.sessions.Create(ctx, s); err != nil {
		return nil, err
	}
	a.logger.Infof("session started for user %d (%s)", profile.UserID, profile.FullName())
	return s, nil
}

// Logout discards the session and everything in it.
func (a *Assistant) Logout(ctx context.Context, sessionID string) error {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return a.sessionErr(err)
	}
	return nil
}

// Session returns the current state of an active session.
func (a *Assistant) Session(ctx context.Context, sessionID string) (*internal.Session, error) {
	s, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, a.sessionErr(err)
	}
	return s, nil
}

// SendMessage waits on the delayer, then records the user's text and the
// engine's reply together in one atomic update and returns the reply. Blank
// input is rejected and a cancelled wait records nothing.
func (a *Assistant) SendMessage(ctx context.Context, sessionID string, req *ChatRequest) (*internal.ChatMessage, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, internal.WrapAppError(400, "Message is empty", ErrEmptyMessage)
	}
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	question := a.newMessage(internal.RoleUser, req.Content)

	if err := a.delay.Wait(ctx); err != nil {
		return nil, err
	}

	reply := a.newMessage(internal.RoleAssistant, a.engine.Respond(req.Content, s.Profile))
	a.logger.Debugf("chat reply category=%s user=%d", a.engine.Match(req.Content), s.Profile.UserID)

	err = a.sessions.Update(ctx, sessionID, func(cur *internal.Session) error {
		cur.Messages = append(cur.Messages, question, reply)
		return nil
	})
	if err != nil {
		return nil, a.sessionErr(err)
	}
	return &reply, nil
}

// History returns the session's messages in the order they were created.
func (a *Assistant) History(ctx context.Context, sessionID string) ([]internal.ChatMessage, error) {
	s, err := a.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Messages, nil
}

// GeneratePlan picks the plan for the profile's dietary preference. Glucose
// and mood are reported alongside but do not change the selection.
func (a *Assistant) GeneratePlan(ctx context.Context, sessionID string) (*MealPlanView, error) {
	if _, err := a.Session(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := a.delay.Wait(ctx); err != nil {
		return nil, err
	}

	var profile internal.UserProfile
	var plan []internal.MealPlanEntry
	err := a.sessions.Update(ctx, sessionID, func(s *internal.Session) error {
		profile = s.Profile
		plan = mealplan.SelectPlan(s.Profile.DietaryPreference)
		s.LastPlan = plan
		return nil
	})
	if err != nil {
		return nil, a.sessionErr(err)
	}
	return &MealPlanView{
		DietaryPreference: profile.DietaryPreference,
		Meals:             plan,
		Totals:            mealplan.Totals(plan),
		LatestCGM:         profile.LatestCGM,
		GlucoseStatus:     classifier.ClassifyGlucose(profile.LatestCGM),
		Mood:              profile.Mood,
	}, nil
}

func (a *Assistant) newMessage(role, content string) internal.ChatMessage {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return internal.ChatMessage{
		ID:        id.String(),
		Role:      role,
		Content:   content,
		Timestamp: a.now(),
	}
}

func (a *Assistant) sessionErr(err error) error {
	if errors.Is(err, storage.ErrSessionNotFound) {
		return internal.WrapAppError(401, "Session not found, please log in again", err)
	}
	return err
}
