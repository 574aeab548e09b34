package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
)

//
// records the last request and replies with a canned body
//
type recordingServer struct {
	*httptest.Server

	method string
	path   string
	header http.Header
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.header = r.Header.Clone()
		rs.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func TestInsertSubmission(t *testing.T) {
	srv := newRecordingServer(t, http.StatusCreated, "")
	client := NewClient(srv.URL+"/", "sekret") // trailing slash must be tolerated

	rec := Submission{
		SessionID:    "abc123",
		Theme:        "levelai",
		Email:        "jo@example.org",
		Name:         "Jo Bloggs",
		Organisation: "Example Org",
		Role:         "ops",
		Answers: scoring.AnswerSet{
			"team-size":   scoring.Single("11-50"),
			"time-drains": scoring.Multi("admin", "comms"),
		},
		Scores: scoring.Result{
			Overall:  64,
			Sections: map[string]scoring.SectionScore{"ethics": {Score: 40, Title: "Playing It Safe"}},
		},
		Interpretation:   "Developing",
		BenchmarkConsent: true,
		CreatedAt:        time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, client.InsertSubmission(context.Background(), rec))

	assert.Equal(t, "POST", srv.method)
	assert.Equal(t, "/rest/v1/assessments", srv.path)
	assert.Equal(t, "sekret", srv.header.Get("apikey"))
	assert.Equal(t, "Bearer sekret", srv.header.Get("Authorization"))
	assert.Equal(t, "return=minimal", srv.header.Get("Prefer"))
	assert.Equal(t, "application/json", srv.header.Get("Content-Type"))

	// the row must round-trip exactly, multi-select arrays included
	var got Submission
	require.NoError(t, json.Unmarshal(srv.body, &got))
	assert.Equal(t, rec, got)
}

func TestInsertSubmissionStoreError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusUnauthorized, `{"message":"bad key"}`)
	client := NewClient(srv.URL, "wrong")

	err := client.InsertSubmission(context.Background(), Submission{SessionID: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot insert submission")
}

func TestSectorBenchmarks(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[
		{
			"sector": "charity",
			"avg_overall_score": 55.5,
			"avg_current_state": 48.2,
			"avg_readiness": 60.1,
			"avg_ethics": 52.0,
			"avg_future": 61.3,
			"sample_size": 42
		}
	]`)
	client := NewClient(srv.URL, "k")

	rows, err := client.SectorBenchmarks(context.Background(), "charity")
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/rpc/get_sector_benchmarks", srv.path)
	assert.JSONEq(t, `{"user_sector":"charity"}`, string(srv.body))

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "charity", row.Sector)
	assert.Equal(t, 55.5, row.AvgOverall)
	assert.Equal(t, 42, row.SampleSize)
	// avg_overall_score must not leak into the section map
	assert.Equal(t, map[string]float64{
		"current_state": 48.2,
		"readiness":     60.1,
		"ethics":        52.0,
		"future":        61.3,
	}, row.SectionAvgs)
}

func TestSectorBenchmarksEmptyResult(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[]`)
	client := NewClient(srv.URL, "k")

	rows, err := client.SectorBenchmarks(context.Background(), "unseen-sector")
	require.NoError(t, err, "an empty cohort is not an error")
	assert.Empty(t, rows)
}

func TestTeamSizeBenchmarks(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[
		{"team_size": "11-50", "avg_overall_score": 58.0, "avg_readiness_score": 62.5, "sample_size": 30}
	]`)
	client := NewClient(srv.URL, "k")

	rows, err := client.TeamSizeBenchmarks(context.Background(), "11-50")
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/rpc/get_team_size_benchmarks", srv.path)
	assert.JSONEq(t, `{"user_team_size":"11-50"}`, string(srv.body))

	require.Len(t, rows, 1)
	assert.Equal(t, TeamSizeBenchmark{
		TeamSize:     "11-50",
		AvgOverall:   58.0,
		AvgReadiness: 62.5,
		SampleSize:   30,
	}, rows[0])
}

func TestUserPercentile(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[
		{"sector_percentile": 72.5, "team_size_percentile": 80.0, "overall_percentile": 75.1}
	]`)
	client := NewClient(srv.URL, "k")

	pct, err := client.UserPercentile(context.Background(), 64, "charity", "11-50")
	require.NoError(t, err)

	assert.JSONEq(t, `{"user_score":64,"user_sector":"charity","user_team_size":"11-50"}`, string(srv.body))
	assert.Equal(t, Percentile{Sector: 72.5, TeamSize: 80.0, Overall: 75.1, Found: true}, pct)
}

func TestUserPercentileNoCohort(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[]`)
	client := NewClient(srv.URL, "k")

	pct, err := client.UserPercentile(context.Background(), 64, "charity", "11-50")
	require.NoError(t, err)
	assert.False(t, pct.Found)
}

func TestTopPerformerInsights(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[
		{
			"common_ai_tools": ["chatgpt", "automation"],
			"avg_productivity_goal": 28.5,
			"leadership_support_avg": 3.2,
			"budget_allocation_avg": 2.8
		}
	]`)
	client := NewClient(srv.URL, "k")

	top, err := client.TopPerformerInsights(context.Background(), "charity", "11-50")
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/rpc/get_top_performer_insights", srv.path)
	assert.True(t, top.Found)
	assert.Equal(t, []string{"chatgpt", "automation"}, top.CommonAITools)
	assert.Equal(t, 28.5, top.AvgProductivityGoal)
}

func TestReadinessTrends(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, `[
		{"month": "2024-04", "completion_count": 8, "avg_score": 49.5},
		{"month": "2024-05", "completion_count": 12, "avg_score": 52.0}
	]`)
	client := NewClient(srv.URL, "k")

	points, err := client.ReadinessTrends(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/rpc/get_readiness_trends", srv.path)
	require.Len(t, points, 2)
	assert.Equal(t, TrendPoint{Month: "2024-05", CompletionCount: 12, AvgScore: 52.0}, points[1])
}

func TestRPCErrorStatus(t *testing.T) {
	srv := newRecordingServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := NewClient(srv.URL, "k")

	_, err := client.SectorBenchmarks(context.Background(), "charity")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get_sector_benchmarks")
}
