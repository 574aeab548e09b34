package scoring

import (
	"math"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"
)

//
// the catalog-wide maximum option score used as every question's
// denominator contribution. this is deliberately a fixed constant,
// not derived per question: historical scores were computed against
// it, so a question whose options topped out below 4 would still be
// normalised against 4. changing this silently re-bases every
// benchmark comparison.
//
const MaxOptionScore = 4

//
// normalised score for one section plus its themed display title
//
type SectionScore struct {
	Score int    `json:"score"`
	Title string `json:"title"`
}

//
// the scored outcome of a submission. overall and every section
// score are integers in [0,100].
//
type Result struct {
	Overall  int                     `json:"overall"`
	Sections map[string]SectionScore `json:"sections"`
}

//
// converts a sparse answer map into per-section and overall
// normalised scores.
//
// per question: an answered single-choice contributes the chosen
// option's score, a multi-select contributes the arithmetic mean of
// the chosen options' scores, and an unanswered question contributes
// zero - but every question always contributes weight*MaxOptionScore
// to the denominator, so missing answers score as worst case rather
// than being excluded.
//
// the overall figure is the weighted average across all questions,
// not the mean of the section percentages: sections with more or
// heavier questions weigh more.
//
func Score(cat *catalog.Catalog, answers AnswerSet) Result {

	sectionScores := make(map[string]SectionScore, len(cat.Sections))
	var totalWeighted, totalWeight float64

	for _, section := range cat.Sections {
		var sectionWeighted, sectionWeight float64

		for _, q := range section.Questions {
			sectionWeighted += questionContribution(q, answers) * q.Weight
			sectionWeight += q.Weight * MaxOptionScore
		}

		sectionScores[section.ID] = SectionScore{
			Score: normalise(sectionWeighted, sectionWeight),
			Title: section.Title,
		}

		totalWeighted += sectionWeighted
		totalWeight += sectionWeight
	}

	return Result{
		Overall:  normalise(totalWeighted, totalWeight),
		Sections: sectionScores,
	}
}

//
// raw contributed value for one question before weighting.
// unknown option values contribute zero rather than erroring -
// a stale draft can reference an option that no longer exists
// and must not take the whole submission down.
//
func questionContribution(q catalog.Question, answers AnswerSet) float64 {

	answer, ok := answers[q.ID]
	if !ok {
		return 0
	}

	if q.Type == catalog.Multiple {
		values := answer.Values()
		if len(values) == 0 {
			return 0
		}
		sum := 0
		for _, v := range values {
			sum += optionScore(q, v)
		}
		return float64(sum) / float64(len(values))
	}

	return float64(optionScore(q, answer.Value()))
}

func optionScore(q catalog.Question, value string) int {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Score
		}
	}
	return 0
}

func normalise(weightedSum, weightDenominator float64) int {
	// weightDenominator can never be zero: catalog validation
	// rejects sections without questions and non-positive weights
	return int(math.Round(100 * weightedSum / weightDenominator))
}
