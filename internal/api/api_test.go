package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/service"
	"github.com/KeerthanaRajaR/gen-well-agent/internal/storage"
)

type envelope struct {
	Data  json.RawMessage    `json:"data"`
	Meta  map[string]any     `json:"meta"`
	Error *internal.AppError `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := internal.NopLogger()
	dir := storage.NewDirectory([]internal.UserProfile{
		{UserID: 1001, FirstName: "Asha", LastName: "Rao", City: "Pune", DietaryPreference: "vegetarian",
			MedicalConditions: "Diabetes", PhysicalLimitations: "None", LatestCGM: 190, Mood: "Tired"},
		{UserID: 1002, FirstName: "Ben", LastName: "Okafor", City: "Lagos", DietaryPreference: "vegan",
			MedicalConditions: "None", PhysicalLimitations: "None", LatestCGM: 110, Mood: "Happy"},
	})
	assistant := service.NewAssistant(dir, storage.NewMemorySessionStore(time.Hour), logger)
	return NewRouter(NewApp(logger, assistant, dir), []string{"*"})
}

func do(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func loginAs(t *testing.T, r *gin.Engine, id string) string {
	t.Helper()
	rec, env := do(t, r, "POST", "/api/login", "", `{"user_id":`+id+`}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var s sessionView
	require.NoError(t, json.Unmarshal(env.Data, &s))
	require.NotEmpty(t, s.SessionID)
	return s.SessionID
}

func TestLogin_ValidAndInvalid(t *testing.T) {
	r := setupRouter(t)

	rec, env := do(t, r, "POST", "/api/login", "", `{"user_id":1001}`)
	assert.Equal(t, 200, rec.Code)
	var s sessionView
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, "Asha", s.Profile.FirstName)
	require.Len(t, s.Messages, 1)
	assert.Contains(t, s.Messages[0].Content, "Hello Asha!")

	// Unknown id
	rec, env = do(t, r, "POST", "/api/login", "", `{"user_id":9999}`)
	assert.Equal(t, 404, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid User ID. Please enter a valid ID between 1001-1002.", env.Error.Message)

	// Not a number
	rec, _ = do(t, r, "POST", "/api/login", "", `{"user_id":"abc"}`)
	assert.Equal(t, 400, rec.Code)

	// Missing, zero or negative ids get the same guidance as unknown ones
	for _, body := range []string{`{}`, `{"user_id":0}`, `{"user_id":-4}`} {
		rec, env = do(t, r, "POST", "/api/login", "", body)
		assert.Equal(t, 404, rec.Code, body)
		require.NotNil(t, env.Error, body)
		assert.Equal(t, "Invalid User ID. Please enter a valid ID between 1001-1002.", env.Error.Message)
	}
}

func TestSessionRoutes_RequireToken(t *testing.T) {
	r := setupRouter(t)
	for _, path := range []string{"/api/dashboard", "/api/chat/messages", "/api/session"} {
		rec, env := do(t, r, "GET", path, "", "")
		assert.Equal(t, 401, rec.Code, path)
		require.NotNil(t, env.Error)
	}
	rec, _ := do(t, r, "GET", "/api/dashboard", "not-a-session", "")
	assert.Equal(t, 401, rec.Code)
}

func TestChat_EndToEnd(t *testing.T) {
	r := setupRouter(t)
	token := loginAs(t, r, "1001")

	rec, env := do(t, r, "POST", "/api/chat/messages", token, `{"content":"What's my glucose and meal plan?"}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var reply internal.ChatMessage
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, internal.RoleAssistant, reply.Role)
	assert.Contains(t, reply.Content, "190 mg/dL")
	assert.Contains(t, reply.Content, "above the normal range")

	// Blank input is rejected and nothing is recorded
	rec, _ = do(t, r, "POST", "/api/chat/messages", token, `{"content":"   "}`)
	assert.Equal(t, 400, rec.Code)
	rec, _ = do(t, r, "POST", "/api/chat/messages", token, `{"content":""}`)
	assert.Equal(t, 400, rec.Code)

	rec, env = do(t, r, "GET", "/api/chat/messages", token, "")
	require.Equal(t, 200, rec.Code)
	var msgs []internal.ChatMessage
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{internal.RoleAssistant, internal.RoleUser, internal.RoleAssistant},
		[]string{msgs[0].Role, msgs[1].Role, msgs[2].Role})
	assert.EqualValues(t, 3, env.Meta["count"])
}

func TestMealPlanAndDashboard(t *testing.T) {
	r := setupRouter(t)
	token := loginAs(t, r, "1002")

	rec, env := do(t, r, "POST", "/api/meal-plan", token, "")
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var plan service.MealPlanView
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, "vegan", plan.DietaryPreference)
	require.Len(t, plan.Meals, 3)
	assert.Equal(t, "Breakfast", plan.Meals[0].MealName)

	rec, env = do(t, r, "GET", "/api/dashboard", token, "")
	require.Equal(t, 200, rec.Code)
	var d service.DashboardView
	require.NoError(t, json.Unmarshal(env.Data, &d))
	assert.Equal(t, "Normal", string(d.Glucose.Status))
	assert.Equal(t, 5, d.Mood.Score)
	assert.Len(t, d.CGMHistory, 7)
}

func TestLogout(t *testing.T) {
	r := setupRouter(t)
	token := loginAs(t, r, "1001")

	rec, _ := do(t, r, "POST", "/api/logout", token, "")
	assert.Equal(t, 200, rec.Code)

	rec, _ = do(t, r, "GET", "/api/chat/messages", token, "")
	assert.Equal(t, 401, rec.Code)
}

func TestGetUser(t *testing.T) {
	r := setupRouter(t)

	rec, env := do(t, r, "GET", "/api/users/1001", "", "")
	require.Equal(t, 200, rec.Code)
	var p internal.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Rao", p.LastName)

	rec, _ = do(t, r, "GET", "/api/users/9999", "", "")
	assert.Equal(t, 404, rec.Code)

	rec, _ = do(t, r, "GET", "/api/users/abc", "", "")
	assert.Equal(t, 400, rec.Code)
}

func TestRequestID(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
