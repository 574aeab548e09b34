package catalog

//
// per-theme headline and report copy
//
type Messaging struct {
	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	CompletionTitle string `json:"completionTitle"`
	CompletionText  string `json:"completionText"`
	ReportTitle     string `json:"reportTitle"`
	CTAButton       string `json:"ctaButton"`
	TimeUnit        string `json:"timeUnit"`
	Certification   string `json:"certification"`
}

//
// a branding/copy variant of the questionnaire. all themes share
// the same question structure; a theme only carries display text.
// the text map is keyed by structural path, eg
// "q.ai-usage.prompt", "q.ai-usage.opt.chatgpt", "s.readiness.title",
// so themed rendering is a lookup rather than conditionals spread
// through the engine.
//
type Theme struct {
	ID        string
	Name      string
	Tagline   string
	Messaging Messaging
	text      map[string]string
}

const DefaultThemeID = "levelai"

//
// resolve a theme by id; unknown or empty ids fall back to the
// default theme so a bad url parameter can never break scoring.
//
func ThemeByID(id string) *Theme {
	if th, ok := themes[id]; ok {
		return th
	}
	return themes[DefaultThemeID]
}

//
// ids of all registered themes, default first
//
func ThemeIDs() []string {
	return []string{"levelai", "tech4good", "raise"}
}

var themes = map[string]*Theme{

	// base catalog text is authored for this theme, so it carries
	// no overrides.
	"levelai": {
		ID:      "levelai",
		Name:    "Level AI",
		Tagline: "Reclaim your time with AI that actually helps",
		Messaging: Messaging{
			HeroTitle:       "How AI-Ready Are You?",
			HeroSubtitle:    "Let's find out how much time AI could give back to your team",
			CompletionTitle: "Nice work! 🎉",
			CompletionText:  "Get your personalised roadmap for reclaiming time with AI that actually works.",
			ReportTitle:     "Your Time-Reclaiming AI Roadmap",
			CTAButton:       "Let's Chat About Your AI Journey",
			TimeUnit:        "hours back to your team each month",
			Certification:   "Level AI Partner",
		},
		text: map[string]string{},
	},

	"tech4good": {
		ID:      "tech4good",
		Name:    "Tech4Good South West",
		Tagline: "Technology for positive social impact",
		Messaging: Messaging{
			HeroTitle:       "Tech for Good Readiness Check",
			HeroSubtitle:    "See how technology can amplify your social impact",
			CompletionTitle: "Nice work!",
			CompletionText:  "Get your personalised report on using tech for good.",
			ReportTitle:     "Your Tech for Good Report",
			CTAButton:       "Join Our Community",
			TimeUnit:        "hours for your mission",
			Certification:   "Tech4Good Member",
		},
		text: map[string]string{
			"s.current-state.title":        "Current Impact",
			"s.readiness.title":            "Digital Maturity",
			"s.readiness.description":      "How prepared is your organisation for digital transformation?",
			"s.ethics.title":               "Responsible Tech",
			"s.ethics.description":         "Understanding your approach to responsible technology",
			"s.future.title":               "Impact Goals",
			"q.ai-usage.prompt":            "Which digital tools are you currently using?",
			"q.ai-usage.opt.chatgpt":       "Basic digital tools",
			"q.ai-usage.opt.custom":        "Custom digital solutions",
			"q.ai-usage.opt.comprehensive": "Comprehensive digital strategy",
			"q.pain-level.prompt":          "How much is inefficiency impacting your mission?",
			"q.leadership.prompt":          "How would you describe leadership's stance on technology?",
			"q.budget.prompt":              "Is there budget allocated for technology initiatives?",
			"q.skills.prompt":              "What's your team's current digital skills level?",
			"q.skills.opt.advanced":        "Strong digital capabilities",
			"q.skills.opt.expert":          "Digital natives",
			"q.ai-policy.prompt":           "Do you have a technology usage policy?",
			"q.transparency.prompt":        "How transparent are you about technology use with stakeholders?",
			"q.time-use.prompt":            "If technology saved your team time, how would you use it?",
			"q.time-use.opt.quality":       "Deepen your impact",
			"q.time-use.opt.innovation":    "Expand your mission",
			"q.timeline.prompt":            "When are you looking to implement new technology?",
		},
	},

	"raise": {
		ID:      "raise",
		Name:    "RAISE Foundation",
		Tagline: "Responsible AI for Shared Excellence",
		Messaging: Messaging{
			HeroTitle:       "RAISE Certification Readiness",
			HeroSubtitle:    "Assess your readiness for ethical AI adoption",
			CompletionTitle: "Assessment Complete!",
			CompletionText:  "Enter your details to receive your RAISE readiness report.",
			ReportTitle:     "Your RAISE Readiness Report",
			CTAButton:       "Start RAISE Certification",
			TimeUnit:        "hours returned to your people",
			Certification:   "RAISE Certified",
		},
		text: map[string]string{
			"s.current-state.title": "Current State",
			"s.readiness.title":     "Readiness Indicators",
			"s.ethics.title":        "Ethics & Governance",
			"s.future.title":        "Future State",
		},
	},
}
