package readiness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/session"
)

//
// a postgrest-shaped stand-in for the aggregate store. inserts are
// counted; the five aggregate functions reply with canned rows.
//
func newFakeStore(t *testing.T, insertStatus int, inserts *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rest/v1/assessments":
			if inserts != nil {
				*inserts++
			}
			w.WriteHeader(insertStatus)
		case strings.HasPrefix(r.URL.Path, "/rest/v1/rpc/get_sector_benchmarks"):
			w.Write([]byte(`[{"sector":"charity","avg_overall_score":50.0,"avg_ethics":55.0,"sample_size":10}]`))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/rpc/get_team_size_benchmarks"):
			w.Write([]byte(`[{"team_size":"11-50","avg_overall_score":52.0,"avg_readiness_score":48.0,"sample_size":8}]`))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/rpc/get_user_percentile"):
			w.Write([]byte(`[{"sector_percentile":80.0,"team_size_percentile":70.0,"overall_percentile":80.0}]`))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/rpc/get_top_performer_insights"):
			w.Write([]byte(`[{"common_ai_tools":["chatgpt"],"avg_productivity_goal":30.0}]`))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/rpc/get_readiness_trends"):
			w.Write([]byte(`[{"month":"2024-05","completion_count":4,"avg_score":51.0}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestService(t *testing.T, storeURL string) *ReadinessService {
	t.Helper()
	srvc, err := New(
		Name("readiness-test"),
		ID("test-1"),
		Port(8080),
		StoreURL(storeURL),
		StoreKey("test-key"),
	)
	require.NoError(t, err)
	return srvc
}

func doJSON(s *ReadinessService, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestNewRequiresStoreURL(t *testing.T) {
	_, err := New(Name("x"), Port(8080))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggregate store")
}

func TestNewFillsDefaults(t *testing.T) {
	srvc, err := New(StoreURL("http://store.local"), Port(8080))
	require.NoError(t, err)
	assert.NotEmpty(t, srvc.serviceName)
	assert.NotEmpty(t, srvc.serviceID)
	assert.Equal(t, "localhost", srvc.serviceHost)
}

func TestPing(t *testing.T) {
	srvc := newTestService(t, "http://store.local")
	rec := doJSON(srvc, "GET", "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssess(t *testing.T) {
	inserts := 0
	store := newFakeStore(t, http.StatusCreated, &inserts)
	srvc := newTestService(t, store.URL)

	rec := doJSON(srvc, "POST", "/assess", `{
		"theme": "levelai",
		"contact": {"email": "jo@example.org", "name": "Jo Bloggs"},
		"answers": {
			"team-size": "11-50",
			"sector": "charity",
			"productivity-goals": "30",
			"timeline": "asap"
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, inserts)

	var res AssessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, "levelai", res.Theme)
	assert.Equal(t, "test-1", res.ServiceID)
	assert.Equal(t, 78, res.TimeSavings) // 60 * 1.3
	assert.Equal(t, "hours back to your team each month", res.TimeSavingsUnit)
	assert.NotEmpty(t, res.Interpretation.Message)
	assert.NotEmpty(t, res.Recommendations)
	// no consent, no benchmarks
	assert.Nil(t, res.Benchmarks)
	assert.Nil(t, res.PerformanceLevel)
}

func TestAssessWithBenchmarkConsent(t *testing.T) {
	store := newFakeStore(t, http.StatusCreated, nil)
	srvc := newTestService(t, store.URL)

	rec := doJSON(srvc, "POST", "/assess", `{
		"contact": {"email": "jo@example.org"},
		"answers": {"team-size": "11-50", "sector": "charity"},
		"benchmarkConsent": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res AssessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Benchmarks)
	assert.True(t, res.Benchmarks.Available)
	assert.True(t, res.Benchmarks.Sector.HasData)
	require.NotNil(t, res.PerformanceLevel)
	assert.Equal(t, "Strong", res.PerformanceLevel.Level) // overall percentile 80
}

func TestAssessValidation(t *testing.T) {
	srvc := newTestService(t, "http://store.local")

	rec := doJSON(srvc, "POST", "/assess", `{"contact": {"email": "jo@example.org"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "answers are required")

	rec = doJSON(srvc, "POST", "/assess", `{"answers": {"team-size": "11-50"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "contact email is required")
}

//
// a failed insert is the one hard failure: the caller is told to
// retry
//
func TestAssessPersistFailure(t *testing.T) {
	store := newFakeStore(t, http.StatusInternalServerError, nil)
	srvc := newTestService(t, store.URL)

	rec := doJSON(srvc, "POST", "/assess", `{
		"contact": {"email": "jo@example.org"},
		"answers": {"team-size": "11-50"}
	}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not be saved")
}

func TestSessionFlow(t *testing.T) {
	store := newFakeStore(t, http.StatusCreated, nil)
	srvc := newTestService(t, store.URL)

	// start; an unknown theme falls back to the default
	rec := doJSON(srvc, "POST", "/session", `{"theme": "no-such-theme"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var sr struct {
		SessionID string        `json:"sessionId"`
		Theme     string        `json:"theme"`
		State     string        `json:"state"`
		Draft     session.Draft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sr))
	assert.Equal(t, "levelai", sr.Theme)
	assert.Equal(t, "in-progress", sr.State)

	// answer the first question; single answers auto-advance
	rec = doJSON(srvc, "POST", "/session/"+sr.SessionID+"/answer",
		`{"theme": "levelai", "questionId": "team-size", "value": "11-50"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sr))
	assert.Equal(t, 1, sr.Draft.CurrentQuestion)

	// navigate forwards and back
	rec = doJSON(srvc, "POST", "/session/"+sr.SessionID+"/advance", `{"theme": "levelai"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(srvc, "POST", "/session/"+sr.SessionID+"/back", `{"theme": "levelai"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// fetch the draft snapshot
	rec = doJSON(srvc, "GET", "/session/"+sr.SessionID+"/draft?theme=levelai", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var draft session.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, "11-50", draft.Answers.Single("team-size"))

	// submit with contact details
	rec = doJSON(srvc, "POST", "/session/"+sr.SessionID+"/submit", `{
		"theme": "levelai",
		"contact": {"email": "jo@example.org", "name": "Jo Bloggs"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res AssessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, sr.SessionID, res.SessionID)

	// the finished session and its draft are gone
	rec = doJSON(srvc, "GET", "/session/"+sr.SessionID+"/draft?theme=levelai", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

//
// a failed persist must leave the session resumable for a retry
//
func TestSessionSubmitPersistFailure(t *testing.T) {
	store := newFakeStore(t, http.StatusInternalServerError, nil)
	srvc := newTestService(t, store.URL)

	rec := doJSON(srvc, "POST", "/session", `{"theme": "levelai"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var sr struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sr))

	rec = doJSON(srvc, "POST", "/session/"+sr.SessionID+"/submit", `{
		"theme": "levelai",
		"contact": {"email": "jo@example.org"}
	}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// still there
	rec = doJSON(srvc, "GET", "/session/"+sr.SessionID+"/draft?theme=levelai", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionResume(t *testing.T) {
	srvc := newTestService(t, "http://store.local")

	rec := doJSON(srvc, "POST", "/session/resume", `{
		"theme": "tech4good",
		"draft": {
			"sessionId": "restored1",
			"answers": {"team-size": "1-10"},
			"currentSection": 1,
			"currentQuestion": 2
		}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var sr struct {
		SessionID string        `json:"sessionId"`
		Theme     string        `json:"theme"`
		Draft     session.Draft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sr))
	assert.Equal(t, "restored1", sr.SessionID)
	assert.Equal(t, "tech4good", sr.Theme)
	assert.Equal(t, 1, sr.Draft.CurrentSection)
	assert.Equal(t, "1-10", sr.Draft.Answers.Single("team-size"))

	rec = doJSON(srvc, "POST", "/session/resume", `{"theme": "levelai", "draft": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "a draft without a sessionId is rejected")
}

//
// resume drafts are untrusted input: positions outside the catalog
// must come back as a 400, not take the request down
//
func TestSessionResumeRejectsOutOfRangeDraft(t *testing.T) {
	srvc := newTestService(t, "http://store.local")

	cases := []string{
		`{"theme": "levelai", "draft": {"sessionId": "x", "currentSection": 99}}`,
		`{"theme": "levelai", "draft": {"sessionId": "x", "currentSection": -1}}`,
		`{"theme": "levelai", "draft": {"sessionId": "x", "currentSection": 0, "currentQuestion": 50}}`,
		`{"theme": "levelai", "draft": {"sessionId": "x", "currentQuestion": -2}}`,
	}
	for _, body := range cases {
		rec := doJSON(srvc, "POST", "/session/resume", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	// a session rejected at resume never registers
	rec := doJSON(srvc, "GET", "/session/x/draft?theme=levelai", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionNotFound(t *testing.T) {
	srvc := newTestService(t, "http://store.local")

	rec := doJSON(srvc, "POST", "/session/nope/advance", `{"theme": "levelai"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
