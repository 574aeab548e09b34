package catalog

import (
	"github.com/pkg/errors"
)

// question answer mode
type QuestionType string

const (
	// respondent picks exactly one option
	Single QuestionType = "single"
	// respondent picks any number of options
	Multiple QuestionType = "multiple"
)

//
// one selectable response to a question.
// value is the stable identifier recorded in answer sets,
// label is display text and may vary by theme.
//
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

//
// a single question within a section.
// ids are stable across theme variants - the same id always
// means the same underlying question, only prompt/label text
// changes between themes.
//
type Question struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"question"`
	Type    QuestionType `json:"type"`
	Weight  float64      `json:"weight"`
	Options []Option     `json:"options"`
}

//
// a named group of related questions
//
type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

//
// the full ordered questionnaire. immutable once constructed,
// built once at process start and shared by all requests.
//
type Catalog struct {
	Sections []Section `json:"sections"`
}

//
// look up a question by id, nil if not present
//
func (c *Catalog) Question(id string) *Question {
	for si := range c.Sections {
		for qi := range c.Sections[si].Questions {
			if c.Sections[si].Questions[qi].ID == id {
				return &c.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}

//
// total number of questions across all sections
//
func (c *Catalog) QuestionCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Questions)
	}
	return n
}

//
// checks the catalog is structurally sound.
// called once at service startup; a failure here is a
// configuration error and must prevent the service starting,
// so that scoring never has to handle an empty section or a
// zero weight denominator at request time.
//
func (c *Catalog) Validate() error {

	if len(c.Sections) == 0 {
		return errors.New("catalog has no sections")
	}

	sectionIDs := map[string]bool{}
	questionIDs := map[string]bool{}

	for _, s := range c.Sections {
		if s.ID == "" {
			return errors.New("section with empty id")
		}
		if sectionIDs[s.ID] {
			return errors.Errorf("duplicate section id: %s", s.ID)
		}
		sectionIDs[s.ID] = true

		if len(s.Questions) == 0 {
			return errors.Errorf("section %s has no questions", s.ID)
		}

		for _, q := range s.Questions {
			if q.ID == "" {
				return errors.Errorf("section %s: question with empty id", s.ID)
			}
			if questionIDs[q.ID] {
				return errors.Errorf("duplicate question id: %s", q.ID)
			}
			questionIDs[q.ID] = true

			if q.Type != Single && q.Type != Multiple {
				return errors.Errorf("question %s: unknown type %q", q.ID, q.Type)
			}
			if q.Weight <= 0 {
				return errors.Errorf("question %s: weight must be positive", q.ID)
			}
			if len(q.Options) == 0 {
				return errors.Errorf("question %s has no options", q.ID)
			}

			optValues := map[string]bool{}
			for _, o := range q.Options {
				if o.Value == "" {
					return errors.Errorf("question %s: option with empty value", q.ID)
				}
				if optValues[o.Value] {
					return errors.Errorf("question %s: duplicate option value %s", q.ID, o.Value)
				}
				optValues[o.Value] = true
				if o.Score < 0 {
					return errors.Errorf("question %s: option %s has negative score", q.ID, o.Value)
				}
			}
		}
	}

	return nil
}

//
// returns a deep copy of the catalog with prompt, label, title
// and description text replaced by the given theme's overrides.
// structure (ids, types, weights, scores) is never changed by
// theming. unknown theme ids fall back to the default theme.
//
func (c *Catalog) ForTheme(themeID string) *Catalog {

	th := ThemeByID(themeID)

	themed := &Catalog{Sections: make([]Section, len(c.Sections))}
	for si, s := range c.Sections {
		ts := s
		if title, ok := th.text["s."+s.ID+".title"]; ok {
			ts.Title = title
		}
		if desc, ok := th.text["s."+s.ID+".description"]; ok {
			ts.Description = desc
		}
		ts.Questions = make([]Question, len(s.Questions))
		for qi, q := range s.Questions {
			tq := q
			if prompt, ok := th.text["q."+q.ID+".prompt"]; ok {
				tq.Prompt = prompt
			}
			tq.Options = make([]Option, len(q.Options))
			for oi, o := range q.Options {
				to := o
				if label, ok := th.text["q."+q.ID+".opt."+o.Value]; ok {
					to.Label = label
				}
				tq.Options[oi] = to
			}
			ts.Questions[qi] = tq
		}
		themed.Sections[si] = ts
	}

	return themed
}
