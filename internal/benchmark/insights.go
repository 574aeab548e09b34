package benchmark

import (
	"fmt"
	"math"
	"strings"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/store"
)

// at most this many insights are surfaced on a report
const maxInsights = 3

const (
	InsightPositive    = "positive"
	InsightImprovement = "improvement"
	InsightNeutral     = "neutral"
)

//
// a short templated comparative statement derived from the
// benchmark aggregates and the user's own scores
//
type Insight struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
}

//
// pure function of the aggregate results and the user's scores.
// candidates are appended in fixed priority order - sector
// comparison, percentile tier, team-size readiness, weakest
// section - and the list is trimmed to the three highest-priority
// entries.
//
func (a *Aggregator) generateInsights(scores scoring.Result, snap *Snapshot) []Insight {

	insights := []Insight{}

	var sectorBench *store.SectorBenchmark
	if len(snap.Sector.Benchmarks) > 0 {
		sectorBench = &snap.Sector.Benchmarks[0]
	}
	var teamBench *store.TeamSizeBenchmark
	if len(snap.TeamSize.Benchmarks) > 0 {
		teamBench = &snap.TeamSize.Benchmarks[0]
	}

	// 1. sector comparison
	if sectorBench != nil {
		if float64(scores.Overall) > sectorBench.AvgOverall {
			insights = append(insights, Insight{
				Type:     InsightPositive,
				Category: "sector",
				Message: fmt.Sprintf("You're performing %d%% above the average for %s organizations",
					round(float64(scores.Overall)-sectorBench.AvgOverall), sectorBench.Sector),
				Icon: "📈",
			})
		} else {
			insights = append(insights, Insight{
				Type:     InsightImprovement,
				Category: "sector",
				Message: fmt.Sprintf("There's room to grow - the average %s organization scores %d%%",
					sectorBench.Sector, round(sectorBench.AvgOverall)),
				Icon: "🎯",
			})
		}
	}

	// 2. percentile tier; below the median no percentile insight
	// is shown at all
	if snap.Percentiles.Found {
		switch {
		case snap.Percentiles.Sector >= 75:
			insights = append(insights, Insight{
				Type:     InsightPositive,
				Category: "percentile",
				Message: fmt.Sprintf("You're in the top %d%% of organizations in your sector",
					round(100-snap.Percentiles.Sector)),
				Icon: "🏆",
			})
		case snap.Percentiles.Sector >= 50:
			insights = append(insights, Insight{
				Type:     InsightNeutral,
				Category: "percentile",
				Message: fmt.Sprintf("You're performing better than %d%% of similar organizations",
					round(snap.Percentiles.Sector)),
				Icon: "👍",
			})
		}
	}

	// 3. team-size readiness comparison
	if teamBench != nil {
		if readiness, ok := scores.Sections["readiness"]; ok &&
			float64(readiness.Score) > teamBench.AvgReadiness {
			insights = append(insights, Insight{
				Type:     InsightPositive,
				Category: "readiness",
				Message: fmt.Sprintf("Your readiness score exceeds the average for %s person organizations",
					teamBench.TeamSize),
				Icon: "🚀",
			})
		}
	}

	// 4. weakest section vs the sector average
	if sectorBench != nil {
		if weakest, ok := a.weakestSection(scores); ok {
			avg, hasAvg := sectorBench.SectionAvgs[strings.ReplaceAll(weakest.id, "-", "_")]
			if hasAvg && float64(weakest.score) < avg {
				insights = append(insights, Insight{
					Type:     InsightImprovement,
					Category: "section",
					Message: fmt.Sprintf("Focus on %q - similar organizations average %d%% in this area",
						weakest.title, round(avg)),
					Icon: "💡",
				})
			}
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

type weakSection struct {
	id    string
	title string
	score int
}

//
// lowest-scoring section, walking sections in catalog order so
// ties resolve to the first encountered minimum
//
func (a *Aggregator) weakestSection(scores scoring.Result) (weakSection, bool) {

	found := false
	var weakest weakSection

	for _, section := range a.cat.Sections {
		ss, ok := scores.Sections[section.ID]
		if !ok {
			continue
		}
		if !found || ss.Score < weakest.score {
			weakest = weakSection{id: section.ID, title: ss.Title, score: ss.Score}
			found = true
		}
	}

	return weakest, found
}

func round(f float64) int {
	return int(math.Round(f))
}

//
// display classification for a percentile rank
//
type PerformanceLevel struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

//
// pure step function used for percentile display
//
func PerformanceLevelFor(percentile float64) PerformanceLevel {
	switch {
	case percentile >= 90:
		return PerformanceLevel{Level: "Exceptional", Color: "success-500", Description: "Top 10%"}
	case percentile >= 75:
		return PerformanceLevel{Level: "Strong", Color: "success-400", Description: "Top 25%"}
	case percentile >= 50:
		return PerformanceLevel{Level: "Average", Color: "primary-400", Description: "Above median"}
	case percentile >= 25:
		return PerformanceLevel{Level: "Developing", Color: "warning-400", Description: "Building momentum"}
	default:
		return PerformanceLevel{Level: "Getting Started", Color: "neutral-400", Description: "Early stage"}
	}
}
