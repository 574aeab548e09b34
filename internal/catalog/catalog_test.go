package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()
	if len(cat.Sections) != 4 {
		t.Errorf("sections = %d, want 4", len(cat.Sections))
	}
	if cat.QuestionCount() != 15 {
		t.Errorf("questions = %d, want 15", cat.QuestionCount())
	}

	wantOrder := []string{"current-state", "readiness", "ethics", "future"}
	for i, s := range cat.Sections {
		if s.ID != wantOrder[i] {
			t.Errorf("section[%d] = %s, want %s", i, s.ID, wantOrder[i])
		}
	}
}

func TestValidateRejectsMalformedCatalogs(t *testing.T) {
	opts := []Option{{Value: "a", Score: 1}}

	cases := []struct {
		name    string
		cat     *Catalog
		wantErr string
	}{
		{
			"no sections",
			&Catalog{},
			"no sections",
		},
		{
			"empty section",
			&Catalog{Sections: []Section{{ID: "s"}}},
			"has no questions",
		},
		{
			"question without options",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: Single, Weight: 1},
			}}}},
			"has no options",
		},
		{
			"zero weight",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: Single, Weight: 0, Options: opts},
			}}}},
			"weight must be positive",
		},
		{
			"duplicate question ids",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: Single, Weight: 1, Options: opts},
				{ID: "q", Type: Single, Weight: 1, Options: opts},
			}}}},
			"duplicate question id",
		},
		{
			"duplicate option values",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: Single, Weight: 1, Options: []Option{
					{Value: "a", Score: 1}, {Value: "a", Score: 2},
				}},
			}}}},
			"duplicate option value",
		},
		{
			"negative option score",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: Single, Weight: 1, Options: []Option{{Value: "a", Score: -1}}},
			}}}},
			"negative score",
		},
		{
			"unknown question type",
			&Catalog{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "q", Type: "ranked", Weight: 1, Options: opts},
			}}}},
			"unknown type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cat.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestForThemeOverridesTextOnly(t *testing.T) {
	base := Default()
	themed := base.ForTheme("tech4good")

	// structure identical
	if themed.QuestionCount() != base.QuestionCount() {
		t.Fatal("theming changed question count")
	}
	for i, s := range themed.Sections {
		if s.ID != base.Sections[i].ID {
			t.Errorf("section id changed: %s -> %s", base.Sections[i].ID, s.ID)
		}
		for j, q := range s.Questions {
			bq := base.Sections[i].Questions[j]
			if q.ID != bq.ID || q.Weight != bq.Weight || q.Type != bq.Type {
				t.Errorf("question %s structure changed", bq.ID)
			}
			for k, o := range q.Options {
				if o.Value != bq.Options[k].Value || o.Score != bq.Options[k].Score {
					t.Errorf("option %s/%s scoring changed", q.ID, o.Value)
				}
			}
		}
	}

	// text overridden where the theme authors it
	if themed.Question("ai-usage").Prompt != "Which digital tools are you currently using?" {
		t.Errorf("ai-usage prompt = %q", themed.Question("ai-usage").Prompt)
	}
	if themed.Sections[1].Title != "Digital Maturity" {
		t.Errorf("readiness title = %q", themed.Sections[1].Title)
	}
	// untouched text carried through
	if themed.Question("data-handling").Prompt != base.Question("data-handling").Prompt {
		t.Error("unthemed prompt changed")
	}
}

func TestForThemeDoesNotMutateBase(t *testing.T) {
	base := Default()
	before := base.Question("ai-usage").Prompt
	_ = base.ForTheme("tech4good")
	if base.Question("ai-usage").Prompt != before {
		t.Error("ForTheme mutated the base catalog")
	}
}

func TestThemeByIDFallback(t *testing.T) {
	if th := ThemeByID("nope"); th.ID != DefaultThemeID {
		t.Errorf("unknown theme resolved to %s", th.ID)
	}
	if th := ThemeByID("raise"); th.Name != "RAISE Foundation" {
		t.Errorf("raise theme = %q", th.Name)
	}
	if len(ThemeIDs()) != 3 {
		t.Errorf("theme ids = %v", ThemeIDs())
	}
}
