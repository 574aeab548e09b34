package session

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/catalog"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/scoring"
	"github.com/simonlevelai/readiness.wearelevel.ai-v2/internal/util"
)

//
// lifecycle of one questionnaire session. answers are only scored
// at transition boundaries, never incrementally while the
// respondent is still mid-questionnaire.
//
type State int

const (
	// respondent is answering; position tracked by section and
	// question index
	StateInProgress State = iota
	// every question visited; waiting for contact details
	StateAwaitingContact
	// submission persisted; session is finished
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateAwaitingContact:
		return "awaiting-contact"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

var (
	ErrNotFound        = errors.New("session not found")
	ErrBadTransition   = errors.New("operation not valid in current session state")
	ErrUnknownQuestion = errors.New("question not in catalog")
	ErrInvalidDraft    = errors.New("draft position out of range")
)

//
// one in-progress submission. the session is the only writer of
// its answer set.
//
type Session struct {
	mu          sync.Mutex
	id          string
	themeID     string
	state       State
	sectionIdx  int
	questionIdx int
	answers     scoring.AnswerSet
	updatedAt   time.Time
}

func (s *Session) ID() string      { return s.id }
func (s *Session) ThemeID() string { return s.themeID }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

//
// the transient snapshot used to resume a not-yet-submitted
// questionnaire. drafts have no lifecycle beyond the session: a
// submitted session's draft is discarded.
//
type Draft struct {
	SessionID       string            `json:"sessionId"`
	Answers         scoring.AnswerSet `json:"answers"`
	CurrentSection  int               `json:"currentSection"`
	CurrentQuestion int               `json:"currentQuestion"`
	Timestamp       time.Time         `json:"timestamp"`
}

func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(scoring.AnswerSet, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}

	return Draft{
		SessionID:       s.id,
		Answers:         answers,
		CurrentSection:  s.sectionIdx,
		CurrentQuestion: s.questionIdx,
		Timestamp:       s.updatedAt,
	}
}

//
// record an answer. single-choice answers replace any previous
// choice and auto-advance; multi-select answers toggle the value
// in or out of the selection and stay on the question (the
// respondent advances explicitly).
//
func (s *Session) Answer(cat *catalog.Catalog, questionID, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrBadTransition
	}

	q := cat.Question(questionID)
	if q == nil {
		return errors.Wrap(ErrUnknownQuestion, questionID)
	}

	if q.Type == catalog.Multiple {
		current := s.answers[questionID].Values()
		next := make([]string, 0, len(current)+1)
		removed := false
		for _, v := range current {
			if v == value {
				removed = true
				continue
			}
			next = append(next, v)
		}
		if !removed {
			next = append(next, value)
		}
		s.answers[questionID] = scoring.Multi(next...)
	} else {
		s.answers[questionID] = scoring.Single(value)
		s.advance(cat)
	}

	s.updatedAt = time.Now()
	return nil
}

//
// move to the next question, crossing section boundaries; past the
// final question the session transitions to awaiting contact
// details
//
func (s *Session) Advance(cat *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrBadTransition
	}
	s.advance(cat)
	s.updatedAt = time.Now()
	return nil
}

func (s *Session) advance(cat *catalog.Catalog) {
	section := cat.Sections[s.sectionIdx]
	switch {
	case s.questionIdx < len(section.Questions)-1:
		s.questionIdx++
	case s.sectionIdx < len(cat.Sections)-1:
		s.sectionIdx++
		s.questionIdx = 0
	default:
		s.state = StateAwaitingContact
	}
}

//
// step back to the previous question; no-op at the very start
//
func (s *Session) Back(cat *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return ErrBadTransition
	}

	switch {
	case s.questionIdx > 0:
		s.questionIdx--
	case s.sectionIdx > 0:
		s.sectionIdx--
		s.questionIdx = len(cat.Sections[s.sectionIdx].Questions) - 1
	}
	s.updatedAt = time.Now()
	return nil
}

//
// finalise the session and hand its answers to the submission
// pipeline. valid from awaiting-contact, and also from in-progress
// so a caller posting a complete answer set in one shot does not
// have to walk every question.
//
func (s *Session) Submit() (scoring.AnswerSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitted {
		return nil, ErrBadTransition
	}
	s.state = StateSubmitted

	answers := make(scoring.AnswerSet, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return answers, nil
}

//
// Manager owns all live sessions, keyed by theme + session id so
// the same respondent can hold independent drafts per theme.
//
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

func key(themeID, id string) string { return themeID + "_" + id }

func (m *Manager) Start(themeID string) *Session {
	s := &Session{
		id:        util.GenerateID(),
		themeID:   themeID,
		state:     StateInProgress,
		answers:   scoring.AnswerSet{},
		updatedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[key(themeID, s.id)] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(themeID, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key(themeID, id)]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

//
// rebuild a session from a saved draft snapshot. the draft arrives
// from the client, so its position indices are validated against
// the catalog before they are allowed anywhere near advance/Back -
// a tampered or stale draft must be rejected, never panic.
//
func (m *Manager) Resume(themeID string, cat *catalog.Catalog, d Draft) (*Session, error) {

	if d.CurrentSection < 0 || d.CurrentSection >= len(cat.Sections) {
		return nil, errors.Wrapf(ErrInvalidDraft, "section %d", d.CurrentSection)
	}
	if d.CurrentQuestion < 0 || d.CurrentQuestion >= len(cat.Sections[d.CurrentSection].Questions) {
		return nil, errors.Wrapf(ErrInvalidDraft, "question %d", d.CurrentQuestion)
	}

	answers := make(scoring.AnswerSet, len(d.Answers))
	for k, v := range d.Answers {
		answers[k] = v
	}

	s := &Session{
		id:          d.SessionID,
		themeID:     themeID,
		state:       StateInProgress,
		sectionIdx:  d.CurrentSection,
		questionIdx: d.CurrentQuestion,
		answers:     answers,
		updatedAt:   time.Now(),
	}

	m.mu.Lock()
	m.sessions[key(themeID, s.id)] = s
	m.mu.Unlock()

	return s, nil
}

//
// drop a finished session and its draft
//
func (m *Manager) Remove(themeID, id string) {
	m.mu.Lock()
	delete(m.sessions, key(themeID, id))
	m.mu.Unlock()
}
