package scoring

import "math"

// hard cap on the headline figure to avoid implausible numbers
const maxMonthlySavings = 150

// fallback buckets when the relevant questions went unanswered
const (
	defaultTeamSize         = "1-10"
	defaultProductivityGoal = "20"
)

//
// monthly hours baseline by organisation size. deliberately
// conservative for larger teams due to coordination overhead.
//
var teamFactors = map[string]float64{
	"1-10":   25,  // small teams: 15-35 hours total
	"11-50":  60,  // medium teams: 40-80 hours total
	"51-200": 90,  // large teams: 60-120 hours total
	"200+":   115, // very large teams: 80-150 hours total
}

//
// scaling factor by stated productivity ambition
//
var goalModifiers = map[string]float64{
	"10":  0.6, // conservative implementation
	"20":  1.0, // baseline expectation
	"30":  1.3, // optimistic but realistic
	"40+": 1.5, // aggressive but capped
}

//
// derives the estimated monthly hours an organisation could
// reclaim, from the team-size and productivity-goal answers.
// result = min(round(teamFactor * goalModifier), 150).
//
// this bucketed, capped formula is the canonical one used in the
// generated report; an older report path multiplied raw team size
// by the goal number, which produced wildly different figures and
// was retired.
//
func EstimateSavings(answers AnswerSet) int {

	teamSize := answers.Single("team-size")
	if _, ok := teamFactors[teamSize]; !ok {
		teamSize = defaultTeamSize
	}

	goal := answers.Single("productivity-goals")
	if _, ok := goalModifiers[goal]; !ok {
		goal = defaultProductivityGoal
	}

	total := int(math.Round(teamFactors[teamSize] * goalModifiers[goal]))
	if total > maxMonthlySavings {
		return maxMonthlySavings
	}
	return total
}
