package catalog

//
// the built-in readiness questionnaire: four sections, fifteen
// questions. base text is the default theme's copy; other themes
// override text via ForTheme. option scores run 0-4.
//
func Default() *Catalog {
	return &Catalog{
		Sections: []Section{
			{
				ID:          "current-state",
				Title:       "Where You're At Today",
				Description: "Tell us about your current setup (don't worry, we won't judge!)",
				Questions: []Question{
					{
						ID:     "team-size",
						Prompt: "How many people are in your organisation?",
						Type:   Single,
						Weight: 1,
						Options: []Option{
							{Value: "1-10", Label: "1-10 people", Score: 1},
							{Value: "11-50", Label: "11-50 people", Score: 2},
							{Value: "51-200", Label: "51-200 people", Score: 3},
							{Value: "200+", Label: "More than 200", Score: 4},
						},
					},
					{
						ID:     "sector",
						Prompt: "Which sector best describes your organisation?",
						Type:   Single,
						Weight: 0.5,
						Options: []Option{
							{Value: "charity", Label: "Charity / Non-profit", Score: 2},
							{Value: "public", Label: "Public sector", Score: 2},
							{Value: "private", Label: "Private sector", Score: 2},
							{Value: "social", Label: "Social enterprise", Score: 2},
						},
					},
					{
						ID:     "ai-usage",
						Prompt: "Which AI tools are you currently using?",
						Type:   Multiple,
						Weight: 2,
						Options: []Option{
							{Value: "none", Label: "None yet", Score: 0},
							{Value: "chatgpt", Label: "ChatGPT or similar", Score: 1},
							{Value: "automation", Label: "Automation tools (Zapier, Make, n8n)", Score: 2},
							{Value: "custom", Label: "Custom AI solutions", Score: 3},
							{Value: "comprehensive", Label: "Comprehensive AI strategy", Score: 4},
						},
					},
					{
						ID:     "time-drains",
						Prompt: "What's eating up all your team's time? (We feel your pain)",
						Type:   Multiple,
						Weight: 1,
						Options: []Option{
							{Value: "admin", Label: "Administrative tasks", Score: 1},
							{Value: "comms", Label: "Communications & emails", Score: 1},
							{Value: "data", Label: "Data entry & reporting", Score: 1},
							{Value: "meetings", Label: "Meetings & coordination", Score: 1},
							{Value: "content", Label: "Content creation", Score: 1},
						},
					},
					{
						ID:     "pain-level",
						Prompt: "How much is inefficiency impacting your organisation?",
						Type:   Single,
						Weight: 1.5,
						Options: []Option{
							{Value: "minimal", Label: "Minimal impact", Score: 1},
							{Value: "moderate", Label: "Moderate frustration", Score: 2},
							{Value: "significant", Label: "Significant challenge", Score: 3},
							{Value: "critical", Label: "Critical blocker", Score: 4},
						},
					},
				},
			},
			{
				ID:          "readiness",
				Title:       "Ready for Takeoff?",
				Description: "Let's see if your team is ready to embrace their AI sidekick",
				Questions: []Question{
					{
						ID:     "leadership",
						Prompt: "How would you describe leadership's stance on AI?",
						Type:   Single,
						Weight: 2,
						Options: []Option{
							{Value: "skeptical", Label: "Skeptical or unaware", Score: 1},
							{Value: "curious", Label: "Curious but cautious", Score: 2},
							{Value: "supportive", Label: "Supportive and engaged", Score: 3},
							{Value: "champion", Label: "Active champions", Score: 4},
						},
					},
					{
						ID:     "budget",
						Prompt: "Is there budget allocated for AI/automation initiatives?",
						Type:   Single,
						Weight: 1.5,
						Options: []Option{
							{Value: "none", Label: "No budget", Score: 1},
							{Value: "minimal", Label: "Minimal budget", Score: 2},
							{Value: "moderate", Label: "Moderate budget", Score: 3},
							{Value: "significant", Label: "Significant investment", Score: 4},
						},
					},
					{
						ID:     "innovation-culture",
						Prompt: "How does your team typically respond to new technology?",
						Type:   Single,
						Weight: 1.5,
						Options: []Option{
							{Value: "resistant", Label: "Generally resistant to change", Score: 1},
							{Value: "cautious", Label: "Cautious but open", Score: 2},
							{Value: "enthusiastic", Label: "Enthusiastic early adopters", Score: 3},
							{Value: "innovative", Label: "Innovation is in our DNA", Score: 4},
						},
					},
					{
						ID:     "skills",
						Prompt: "What's your team's current AI/digital skills level?",
						Type:   Single,
						Weight: 1,
						Options: []Option{
							{Value: "basic", Label: "Basic digital skills", Score: 1},
							{Value: "intermediate", Label: "Comfortable with technology", Score: 2},
							{Value: "advanced", Label: "Some AI experience", Score: 3},
							{Value: "expert", Label: "AI-savvy team", Score: 4},
						},
					},
				},
			},
			{
				ID:          "ethics",
				Title:       "Playing It Safe",
				Description: "Making sure we keep things above board and human-friendly",
				Questions: []Question{
					{
						ID:     "data-handling",
						Prompt: "How mature are your data handling practices?",
						Type:   Single,
						Weight: 2,
						Options: []Option{
							{Value: "basic", Label: "Basic compliance only", Score: 1},
							{Value: "documented", Label: "Documented policies in place", Score: 2},
							{Value: "robust", Label: "Robust governance framework", Score: 3},
							{Value: "advanced", Label: "Industry-leading practices", Score: 4},
						},
					},
					{
						ID:     "ai-policy",
						Prompt: "Do you have an AI usage policy?",
						Type:   Single,
						Weight: 1.5,
						Options: []Option{
							{Value: "none", Label: "No policy yet", Score: 1},
							{Value: "informal", Label: "Informal guidelines", Score: 2},
							{Value: "documented", Label: "Documented policy", Score: 3},
							{Value: "comprehensive", Label: "Comprehensive framework", Score: 4},
						},
					},
					{
						ID:     "transparency",
						Prompt: "How transparent are you about AI use with stakeholders?",
						Type:   Single,
						Weight: 1,
						Options: []Option{
							{Value: "none", Label: "Haven't considered it", Score: 1},
							{Value: "internal", Label: "Internal transparency only", Score: 2},
							{Value: "partial", Label: "Some external communication", Score: 3},
							{Value: "full", Label: "Full transparency commitment", Score: 4},
						},
					},
				},
			},
			{
				ID:          "future",
				Title:       "Dream Big",
				Description: "Paint us a picture of your ideal future",
				Questions: []Question{
					{
						ID:     "productivity-goals",
						Prompt: "What productivity gain would make this worthwhile?",
						Type:   Single,
						Weight: 1,
						Options: []Option{
							{Value: "10", Label: "10% improvement", Score: 1},
							{Value: "20", Label: "20% improvement", Score: 2},
							{Value: "30", Label: "30% improvement", Score: 3},
							{Value: "40+", Label: "40% or more", Score: 4},
						},
					},
					{
						ID:     "time-use",
						Prompt: "If AI saved your team time, how would you use it?",
						Type:   Single,
						Weight: 2,
						Options: []Option{
							{Value: "more-work", Label: "Take on more work", Score: 1},
							{Value: "quality", Label: "Improve quality of existing work", Score: 2},
							{Value: "innovation", Label: "Focus on innovation", Score: 3},
							{Value: "wellbeing", Label: "Improve work-life balance", Score: 4},
						},
					},
					{
						ID:     "timeline",
						Prompt: "When are you looking to implement AI solutions?",
						Type:   Single,
						Weight: 1,
						Options: []Option{
							{Value: "exploring", Label: "Just exploring", Score: 1},
							{Value: "12months", Label: "Within 12 months", Score: 2},
							{Value: "6months", Label: "Within 6 months", Score: 3},
							{Value: "asap", Label: "As soon as possible", Score: 4},
						},
					},
				},
			},
		},
	}
}
