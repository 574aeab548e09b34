package store

import (
	"time"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
)

//
// one row of the append-only assessments table. submissions are
// write-once from this service: no update or delete path exists,
// because every later benchmark is computed over this history.
//
type Submission struct {
	SessionID        string            `json:"session_id"`
	Theme            string            `json:"theme"`
	Email            string            `json:"email"`
	Name             string            `json:"name"`
	Organisation     string            `json:"organisation"`
	Role             string            `json:"role"`
	Answers          scoring.AnswerSet `json:"answers"`
	Scores           scoring.Result    `json:"scores"`
	Interpretation   string            `json:"interpretation"`
	BenchmarkConsent bool              `json:"benchmark_consent"`
	CreatedAt        time.Time         `json:"created_at"`
}

//
// aggregate statistics for one sector. SectionAvgs is keyed by
// the snake_case section column suffix (current_state, readiness,
// ethics, future) as returned by the store.
//
type SectorBenchmark struct {
	Sector      string
	AvgOverall  float64
	SectionAvgs map[string]float64
	SampleSize  int
}

//
// aggregate statistics for one team-size bucket
//
type TeamSizeBenchmark struct {
	TeamSize     string
	AvgOverall   float64
	AvgReadiness float64
	SampleSize   int
}

//
// the store's estimate of what fraction of prior submissions this
// score exceeds, within sector, team-size bucket and overall.
// treated as opaque numbers by the engine.
//
type Percentile struct {
	Sector   float64
	TeamSize float64
	Overall  float64
	Found    bool
}

//
// profile of the top-scoring organisations in the same sector and
// team-size bucket
//
type TopPerformers struct {
	CommonAITools        []string
	AvgProductivityGoal  float64
	LeadershipSupportAvg float64
	BudgetAllocationAvg  float64
	Found                bool
}

//
// one month of the completion/score trend series
//
type TrendPoint struct {
	Month           string  `json:"month"`
	CompletionCount int     `json:"completion_count"`
	AvgScore        float64 `json:"avg_score"`
}
