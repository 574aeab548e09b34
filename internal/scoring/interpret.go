package scoring

import "github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"

//
// qualitative readiness tier. ordering matters: tiers partition the
// score range at 25/50/75 with inclusive lower bounds.
//
type Level int

const (
	Beginning Level = iota
	Developing
	Advancing
	Leading
)

func (l Level) String() string {
	switch l {
	case Beginning:
		return "Beginning"
	case Developing:
		return "Developing"
	case Advancing:
		return "Advancing"
	case Leading:
		return "Leading"
	}
	return "Unknown"
}

//
// the qualitative read on an overall score: tier, a themed message,
// the recommended priority action and a display colour token.
//
type Interpretation struct {
	Level    Level  `json:"-"`
	LevelTag string `json:"level"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Color    string `json:"color"`
}

// message/priority copy for one (theme, tier) cell
type copyBlock struct {
	message  string
	priority string
}

//
// maps an overall score to its tier and theme-authored copy.
// pure table lookup - bands at [0,25) [25,50) [50,75) [75,100].
//
func Interpret(overall int, themeID string) Interpretation {

	level := levelFor(overall)

	cb, ok := interpretCopy[themeID][level]
	if !ok {
		cb = interpretCopy[catalog.DefaultThemeID][level]
	}

	return Interpretation{
		Level:    level,
		LevelTag: level.String(),
		Message:  cb.message,
		Priority: cb.priority,
		Color:    levelColors[level],
	}
}

func levelFor(overall int) Level {
	switch {
	case overall < 25:
		return Beginning
	case overall < 50:
		return Developing
	case overall < 75:
		return Advancing
	default:
		return Leading
	}
}

var levelColors = map[Level]string{
	Beginning:  "text-neutral-700 bg-neutral-50 border-neutral-200",
	Developing: "text-neutral-700 bg-surface-200 border-surface-300",
	Advancing:  "text-primary-700 bg-primary-50 border-primary-200",
	Leading:    "text-success-800 bg-success-100 border-success-300",
}

//
// independently authored copy per (theme, tier). themes without a
// cell fall back to the default theme's copy, which is how the
// raise theme works everywhere except the top tier.
//
var interpretCopy = map[string]map[Level]copyBlock{

	"levelai": {
		Beginning: {
			message:  "Perfect! You're standing at the door of opportunity. AI is about to become your team's new best friend.",
			priority: `Start with quick wins - show your team what "AI that actually helps" looks like`,
		},
		Developing: {
			message:  "Great start! You've dipped your toes in the AI waters. Time to dive in and make some waves.",
			priority: "Scale what's working and show your team how much time they can reclaim",
		},
		Advancing: {
			message:  `Impressive! You're already living the Level AI dream. Your team knows what "AI that actually helps" means.`,
			priority: "Time to become the AI success story everyone wants to copy",
		},
		Leading: {
			message:  "Wow! You're not just AI-ready, you're AI-legendary. Your team has probably forgotten what manual work feels like.",
			priority: `You're the poster child for "reclaiming time with AI that actually helps" - let's showcase your success!`,
		},
	},

	"tech4good": {
		Beginning: {
			message:  "You're at the start of your digital journey. Exciting times ahead!",
			priority: "Join our community and connect with others on similar journeys",
		},
		Developing: {
			message:  "You've made a start with technology. Let's amplify your impact.",
			priority: "Focus on high-impact digital tools for your mission",
		},
		Advancing: {
			message:  "You're leveraging tech well. Time to share your learnings!",
			priority: "Share your knowledge with the Tech4Good community",
		},
		Leading: {
			message:  "You're a digital leader! Help others follow your path.",
			priority: `You're the poster child for "reclaiming time with AI that actually helps" - let's showcase your success!`,
		},
	},

	"raise": {
		Leading: {
			message:  "Wow! You're not just AI-ready, you're AI-legendary. Your team has probably forgotten what manual work feels like.",
			priority: "Share your learnings and pursue RAISE certification",
		},
	},
}
