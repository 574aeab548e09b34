package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/util"
)

//
// Client wraps the queryable aggregate store (a postgrest-style
// endpoint). it is constructed once at service startup and passed
// explicitly to the collaborators that need it - there is no
// package-level singleton.
//
// the store exposes one append-only write (the assessments table)
// and five read-only aggregate rpc functions used for benchmarking.
//
type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

//
// standard headers for every store call
//
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + c.apiKey,
	}
}

//
// append one submission row. a failure here is a hard failure of
// the whole submission - the caller must tell the user to retry,
// since silently losing a row would corrupt the benchmark baseline
// for every future user.
//
func (c *Client) InsertSubmission(ctx context.Context, rec Submission) error {

	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "cannot marshal submission")
	}

	headers := c.headers()
	headers["Prefer"] = "return=minimal"

	url := fmt.Sprintf("%s/rest/v1/assessments", c.baseURL)
	if _, err := util.Fetch(ctx, "POST", url, headers, bytes.NewBuffer(payload)); err != nil {
		return errors.Wrap(err, "cannot insert submission")
	}

	return nil
}

//
// invoke one of the store's aggregate rpc functions and return the
// raw response bytes for extraction
//
func (c *Client) rpc(ctx context.Context, fn string, args map[string]interface{}) ([]byte, error) {

	payload, err := json.Marshal(args)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot marshal %s args", fn)
	}

	url := fmt.Sprintf("%s/rest/v1/rpc/%s", c.baseURL, fn)
	res, err := util.Fetch(ctx, "POST", url, c.headers(), bytes.NewBuffer(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "rpc %s failed", fn)
	}

	return res, nil
}

//
// average scores per sector. an empty result set is not an error -
// it just means no prior submissions exist for the sector.
//
func (c *Client) SectorBenchmarks(ctx context.Context, sector string) ([]SectorBenchmark, error) {

	res, err := c.rpc(ctx, "get_sector_benchmarks", map[string]interface{}{
		"user_sector": sector,
	})
	if err != nil {
		return nil, err
	}

	rows := []SectorBenchmark{}
	for _, row := range gjson.ParseBytes(res).Array() {
		b := SectorBenchmark{
			Sector:      row.Get("sector").String(),
			AvgOverall:  row.Get("avg_overall_score").Float(),
			SectionAvgs: map[string]float64{},
			SampleSize:  int(row.Get("sample_size").Int()),
		}
		// section averages arrive as avg_<section> columns
		row.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if strings.HasPrefix(k, "avg_") && k != "avg_overall_score" {
				b.SectionAvgs[strings.TrimPrefix(k, "avg_")] = value.Float()
			}
			return true
		})
		rows = append(rows, b)
	}

	return rows, nil
}

//
// average scores per team-size bucket
//
func (c *Client) TeamSizeBenchmarks(ctx context.Context, teamSize string) ([]TeamSizeBenchmark, error) {

	res, err := c.rpc(ctx, "get_team_size_benchmarks", map[string]interface{}{
		"user_team_size": teamSize,
	})
	if err != nil {
		return nil, err
	}

	rows := []TeamSizeBenchmark{}
	for _, row := range gjson.ParseBytes(res).Array() {
		rows = append(rows, TeamSizeBenchmark{
			TeamSize:     row.Get("team_size").String(),
			AvgOverall:   row.Get("avg_overall_score").Float(),
			AvgReadiness: row.Get("avg_readiness_score").Float(),
			SampleSize:   int(row.Get("sample_size").Int()),
		})
	}

	return rows, nil
}

//
// percentile rank of the given score within sector, team-size
// bucket and the whole dataset
//
func (c *Client) UserPercentile(ctx context.Context, score int, sector, teamSize string) (Percentile, error) {

	res, err := c.rpc(ctx, "get_user_percentile", map[string]interface{}{
		"user_score":     score,
		"user_sector":    sector,
		"user_team_size": teamSize,
	})
	if err != nil {
		return Percentile{}, err
	}

	row := gjson.GetBytes(res, "0")
	if !row.Exists() {
		return Percentile{}, nil
	}

	return Percentile{
		Sector:   row.Get("sector_percentile").Float(),
		TeamSize: row.Get("team_size_percentile").Float(),
		Overall:  row.Get("overall_percentile").Float(),
		Found:    true,
	}, nil
}

//
// profile of top performers in the same sector/team-size cohort
//
func (c *Client) TopPerformerInsights(ctx context.Context, sector, teamSize string) (TopPerformers, error) {

	res, err := c.rpc(ctx, "get_top_performer_insights", map[string]interface{}{
		"user_sector":    sector,
		"user_team_size": teamSize,
	})
	if err != nil {
		return TopPerformers{}, err
	}

	row := gjson.GetBytes(res, "0")
	if !row.Exists() {
		return TopPerformers{}, nil
	}

	tools := []string{}
	for _, t := range row.Get("common_ai_tools").Array() {
		tools = append(tools, t.String())
	}

	return TopPerformers{
		CommonAITools:        tools,
		AvgProductivityGoal:  row.Get("avg_productivity_goal").Float(),
		LeadershipSupportAvg: row.Get("leadership_support_avg").Float(),
		BudgetAllocationAvg:  row.Get("budget_allocation_avg").Float(),
		Found:                true,
	}, nil
}

//
// monthly completion counts and average scores across the whole
// dataset
//
func (c *Client) ReadinessTrends(ctx context.Context) ([]TrendPoint, error) {

	res, err := c.rpc(ctx, "get_readiness_trends", map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	points := []TrendPoint{}
	for _, row := range gjson.ParseBytes(res).Array() {
		points = append(points, TrendPoint{
			Month:           row.Get("month").String(),
			CompletionCount: int(row.Get("completion_count").Int()),
			AvgScore:        row.Get("avg_score").Float(),
		})
	}

	return points, nil
}
