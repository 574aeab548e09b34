package benchmark

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/store"
)

// budget for each individual aggregate query; a timed-out query is
// treated as a failed query, not a failed snapshot
const queryTimeout = 10 * time.Second

//
// the read-only aggregate queries the aggregator fans out to.
// satisfied by *store.Client; narrowed to an interface so tests can
// substitute a fake store.
//
type Store interface {
	SectorBenchmarks(ctx context.Context, sector string) ([]store.SectorBenchmark, error)
	TeamSizeBenchmarks(ctx context.Context, teamSize string) ([]store.TeamSizeBenchmark, error)
	UserPercentile(ctx context.Context, score int, sector, teamSize string) (store.Percentile, error)
	TopPerformerInsights(ctx context.Context, sector, teamSize string) (store.TopPerformers, error)
	ReadinessTrends(ctx context.Context) ([]store.TrendPoint, error)
}

//
// comparative statistics for one cohort dimension
//
type SectorBlock struct {
	Name       string                  `json:"name"`
	Benchmarks []store.SectorBenchmark `json:"benchmarks"`
	HasData    bool                    `json:"hasData"`
}

type TeamSizeBlock struct {
	Name       string                    `json:"name"`
	Benchmarks []store.TeamSizeBenchmark `json:"benchmarks"`
	HasData    bool                      `json:"hasData"`
}

//
// a point-in-time projection of the persisted submission history,
// produced fresh for every submission. Available is false when the
// store was unreachable; the report then simply omits the
// comparison section.
//
type Snapshot struct {
	Available     bool                `json:"available"`
	Sector        SectorBlock         `json:"sector"`
	TeamSize      TeamSizeBlock       `json:"teamSize"`
	Percentiles   store.Percentile    `json:"percentiles"`
	TopPerformers store.TopPerformers `json:"topPerformers"`
	Trends        []store.TrendPoint  `json:"trends"`
	Insights      []Insight           `json:"insights"`
}

//
// Aggregator computes a BenchmarkSnapshot for a scored submission
// by issuing the five aggregate queries concurrently and degrading
// each failure to a "no data" block. it never returns an error:
// benchmarking is strictly additive to a report.
//
type Aggregator struct {
	store  Store
	cat    *catalog.Catalog
	logger *log.Logger
}

func NewAggregator(s Store, cat *catalog.Catalog, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.New("benchmark")
	}
	return &Aggregator{store: s, cat: cat, logger: logger}
}

//
// fan out the five independent aggregate queries, wait for all of
// them, then assemble the snapshot from whatever subset succeeded.
// partial failure of one query must not block the others.
//
func (a *Aggregator) Aggregate(ctx context.Context, answers scoring.AnswerSet, scores scoring.Result) *Snapshot {

	sector := answers.Single("sector")
	teamSize := answers.Single("team-size")

	var (
		sectorRows []store.SectorBenchmark
		teamRows   []store.TeamSizeBenchmark
		percentile store.Percentile
		top        store.TopPerformers
		trends     []store.TrendPoint
	)

	// one slot per query; written only by that query's goroutine
	succeeded := make([]bool, 5)

	g := new(errgroup.Group)

	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()
		rows, err := a.store.SectorBenchmarks(qctx, sector)
		if err != nil {
			a.logger.Warnf("sector benchmarks query failed: %v", err)
			return nil
		}
		sectorRows, succeeded[0] = rows, true
		return nil
	})

	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()
		rows, err := a.store.TeamSizeBenchmarks(qctx, teamSize)
		if err != nil {
			a.logger.Warnf("team size benchmarks query failed: %v", err)
			return nil
		}
		teamRows, succeeded[1] = rows, true
		return nil
	})

	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()
		pct, err := a.store.UserPercentile(qctx, scores.Overall, sector, teamSize)
		if err != nil {
			a.logger.Warnf("percentile query failed: %v", err)
			return nil
		}
		percentile, succeeded[2] = pct, true
		return nil
	})

	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()
		tp, err := a.store.TopPerformerInsights(qctx, sector, teamSize)
		if err != nil {
			a.logger.Warnf("top performer query failed: %v", err)
			return nil
		}
		top, succeeded[3] = tp, true
		return nil
	})

	g.Go(func() error {
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()
		ts, err := a.store.ReadinessTrends(qctx)
		if err != nil {
			a.logger.Warnf("trends query failed: %v", err)
			return nil
		}
		trends, succeeded[4] = ts, true
		return nil
	})

	// goroutines swallow their own errors, so Wait cannot fail
	_ = g.Wait()

	available := false
	for _, ok := range succeeded {
		available = available || ok
	}

	snap := &Snapshot{
		Available: available,
		Sector: SectorBlock{
			Name:       sector,
			Benchmarks: sectorRows,
			HasData:    len(sectorRows) > 0,
		},
		TeamSize: TeamSizeBlock{
			Name:       teamSize,
			Benchmarks: teamRows,
			HasData:    len(teamRows) > 0,
		},
		Percentiles:   percentile,
		TopPerformers: top,
		Trends:        trends,
	}

	if available {
		snap.Insights = a.generateInsights(scores, snap)
	}

	return snap
}
