package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Guarded transitions. These indicate wiring bugs in the caller, not
// user-facing conditions.
var (
	ErrNoQuiz          = errors.New("session: no quiz loaded")
	ErrEmptyQuiz       = errors.New("session: quiz has no questions")
	ErrIndexOutOfRange = errors.New("session: question index out of range")
	ErrInvalidLetter   = errors.New("session: answer must be A-D or empty")
	ErrNotScored       = errors.New("session: quiz has not been submitted")
)

// Phase is the observable state of a QuizSession.
type Phase int

const (
	// PhaseEmpty means no quiz has been loaded yet.
	PhaseEmpty Phase = iota

	// PhaseAwaitingSubmission means a question set is present and answers
	// may be entered; submission has not yet been made.
	PhaseAwaitingSubmission

	// PhaseScored means the quiz has been submitted and a result exists.
	PhaseScored
)

// Result is the outcome of one submission. The score is recomputed only
// by re-submission, never incrementally.
type Result struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Unanswered int  `json:"unanswered"`
	Submitted  bool `json:"submitted"`
}

// QuizSession holds the generated question list, the user's in-progress
// answers, the scoring result, and the explanation-visibility flag for
// the lifetime of one client session. It is not safe for concurrent use;
// each client holds its own independent session.
type QuizSession struct {
	id        string
	phase     Phase
	questions []quizgen.Question

	// answers maps 0-based question index to the selected letter.
	// "" means unanswered. Fully reset on every Load.
	answers map[int]string

	result           *Result
	showExplanations bool
}

// New creates an empty session with a fresh ID.
func New() *QuizSession {
	return &QuizSession{
		id:      uuid.NewString(),
		phase:   PhaseEmpty,
		answers: make(map[int]string),
	}
}

// ID returns the session identifier.
func (s *QuizSession) ID() string { return s.id }

// Phase returns the current observable state.
func (s *QuizSession) Phase() Phase { return s.phase }

// Questions returns the loaded question list.
func (s *QuizSession) Questions() []quizgen.Question { return s.questions }

// Load installs a freshly generated question list. It fully replaces any
// prior state: answers reset to all-unanswered, the previous result and
// the explanation flag are cleared. A failed generation must NOT call
// Load; prior state stays untouched on failure.
func (s *QuizSession) Load(questions []quizgen.Question) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}

	s.questions = questions
	s.answers = make(map[int]string, len(questions))
	for i := range questions {
		s.answers[i] = ""
	}
	s.result = nil
	s.showExplanations = false
	s.phase = PhaseAwaitingSubmission
	return nil
}

// Select records the user's answer for a question. The empty letter
// deselects. Last write wins; selecting is idempotent.
func (s *QuizSession) Select(index int, letter string) error {
	if s.phase == PhaseEmpty {
		return ErrNoQuiz
	}
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	if letter != "" && !quizgen.ValidLetter(letter) {
		return ErrInvalidLetter
	}
	s.answers[index] = letter
	return nil
}

// Answer returns the currently selected letter for a question, or ""
// when unanswered or out of range.
func (s *QuizSession) Answer(index int) string {
	return s.answers[index]
}

// Submit scores the current answers against the answer key. Unanswered
// questions are always a miss and are reported separately so the caller
// can surface a warning. Submitting again recomputes from scratch.
func (s *QuizSession) Submit() (Result, error) {
	if s.phase == PhaseEmpty {
		return Result{}, ErrNoQuiz
	}

	score := 0
	unanswered := 0
	for i, q := range s.questions {
		selected := s.answers[i]
		if selected == "" {
			unanswered++
			continue
		}
		if selected == q.Answer {
			score++
		}
	}

	r := Result{
		Score:      score,
		Total:      len(s.questions),
		Unanswered: unanswered,
		Submitted:  true,
	}
	s.result = &r
	s.phase = PhaseScored
	return r, nil
}

// Result returns the most recent submission result, if any.
func (s *QuizSession) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// ToggleExplanations flips the explanation-visibility flag and returns
// the new value. The flag is only meaningful once scored; toggling is
// non-destructive and triggers no recomputation.
func (s *QuizSession) ToggleExplanations() (bool, error) {
	if s.phase != PhaseScored {
		return false, ErrNotScored
	}
	s.showExplanations = !s.showExplanations
	return s.showExplanations, nil
}

// ExplanationsVisible reports the current visibility flag.
func (s *QuizSession) ExplanationsVisible() bool { return s.showExplanations }
