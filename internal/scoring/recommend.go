package scoring

import "github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"

// a section is considered weak below this score
const weakSectionThreshold = 50

// at most this many recommendations appear in a report
const maxRecommendations = 3

//
// one entry in the report's personalised action plan
//
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

//
// builds the action plan for a scored submission: one templated
// recommendation per section scoring under 50, in catalog order,
// plus a quick-win recommendation when the stated timeline is
// urgent. capped at three entries.
//
func Recommend(cat *catalog.Catalog, result Result, answers AnswerSet, themeID string) []Recommendation {

	recs := []Recommendation{}

	for _, section := range cat.Sections {
		ss, ok := result.Sections[section.ID]
		if !ok || ss.Score >= weakSectionThreshold {
			continue
		}
		if rec, ok := sectionRec(section.ID, themeID); ok {
			recs = append(recs, rec)
		}
	}

	timeline := answers.Single("timeline")
	if timeline == "asap" || timeline == "6months" {
		recs = append(recs, quickWinRec(themeID))
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func sectionRec(sectionID, themeID string) (Recommendation, bool) {
	table := sectionRecs[themeID]
	if table == nil {
		table = sectionRecs[catalog.DefaultThemeID]
	}
	rec, ok := table[sectionID]
	return rec, ok
}

func quickWinRec(themeID string) Recommendation {
	if rec, ok := quickWinRecs[themeID]; ok {
		return rec
	}
	return quickWinRecs[catalog.DefaultThemeID]
}

var sectionRecs = map[string]map[string]Recommendation{

	"levelai": {
		"current-state": {
			Icon:        "🧠",
			Title:       "Start Small, Think Big",
			Description: "Begin with one high-impact use case. Measure time saved religiously.",
		},
		"readiness": {
			Icon:        "👥",
			Title:       "Build Your Coalition",
			Description: "Identify AI champions across departments. Create a cross-functional AI task force.",
		},
		"ethics": {
			Icon:        "🛡️",
			Title:       "Ethics First",
			Description: "Draft an AI usage policy. Start simple - even a one-pager is better than nothing.",
		},
		"future": {
			Icon:        "🎯",
			Title:       "Define Success",
			Description: "Set clear, measurable goals for AI adoption. Think hours saved, not just efficiency.",
		},
	},

	"tech4good": {
		"current-state": {
			Icon:        "🧠",
			Title:       "Start Small, Think Big",
			Description: "Pick one process that frustrates your team. Digital transformation starts there.",
		},
		"readiness": {
			Icon:        "👥",
			Title:       "Build Your Coalition",
			Description: "Connect with other Tech4Good organisations. Learn from their journeys.",
		},
		"ethics": {
			Icon:        "🛡️",
			Title:       "Responsible Tech",
			Description: "Create a simple digital ethics statement. Your beneficiaries will appreciate it.",
		},
		"future": {
			Icon:        "🎯",
			Title:       "Define Success",
			Description: "Set clear goals for your digital transformation. Think impact, not just efficiency.",
		},
	},
}

var quickWinRecs = map[string]Recommendation{
	"levelai": {
		Icon:        "⚡",
		Title:       "Quick Win Focus",
		Description: "Start with email automation or meeting summaries. Show value fast.",
	},
	"tech4good": {
		Icon:        "⚡",
		Title:       "Quick Win Focus",
		Description: "Start with simple automation tools. Show impact within weeks.",
	},
}
