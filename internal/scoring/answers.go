package scoring

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

//
// one response to a question. single-choice questions record one
// option value, multi-select questions record a list. the JSON
// form is either a string or an array of strings, matching the
// shape stored in the assessments table, so persisted answers
// round-trip without loss.
//
type Answer struct {
	value  string
	values []string
	multi  bool
}

// answer to a single-choice question
func Single(value string) Answer {
	return Answer{value: value}
}

// answer to a multi-select question
func Multi(values ...string) Answer {
	return Answer{values: append([]string{}, values...), multi: true}
}

func (a Answer) IsMulti() bool { return a.multi }

// the chosen option value; empty for multi-select answers
func (a Answer) Value() string { return a.value }

// the chosen option values; nil for single-choice answers
func (a Answer) Values() []string { return a.values }

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.values)
	}
	return json.Marshal(a.value)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty answer value")
	}
	if trimmed[0] == '[' {
		var vals []string
		if err := json.Unmarshal(trimmed, &vals); err != nil {
			return errors.Wrap(err, "cannot parse multi-select answer")
		}
		*a = Answer{values: vals, multi: true}
		return nil
	}
	var val string
	if err := json.Unmarshal(trimmed, &val); err != nil {
		return errors.Wrap(err, "cannot parse answer")
	}
	*a = Answer{value: val}
	return nil
}

//
// the sparse answer map for one submission, keyed by question id.
// only answered questions are present. owned by a single session;
// scoring reads it, never mutates it.
//
type AnswerSet map[string]Answer

//
// convenience accessor for single-choice answers used as lookup
// keys elsewhere (team-size, sector, productivity-goals).
// returns "" when unanswered or multi-select.
//
func (as AnswerSet) Single(questionID string) string {
	a, ok := as[questionID]
	if !ok || a.multi {
		return ""
	}
	return a.value
}
